package controllers

import (
	"net/http"

	"github.com/motorhub/motorhub-backend/api/responses"
	"github.com/motorhub/motorhub-backend/api/validators"
	reportsvc "github.com/motorhub/motorhub-backend/internal/reports"
	"github.com/motorhub/motorhub-backend/pkg/logger"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// InventoryReport values the current stock holding.
func InventoryReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload inventoryReportRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		report, err := svc.InventoryReport(r.Context(), reportsvc.InventoryReportInput{
			ShowLowStockOnly: payload.ShowLowStockOnly,
			SortBy:           payload.SortBy,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// SalesSummaryReport aggregates consumption over a date range.
func SalesSummaryReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload dateRangeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		report, err := svc.SalesSummary(r.Context(), payload.StartDate, payload.EndDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// ItemPurchaseHistoryReport lists one item's receipts over a date range.
func ItemPurchaseHistoryReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload itemPurchaseHistoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		report, err := svc.ItemPurchaseHistory(r.Context(), payload.ItemID, payload.StartDate, payload.EndDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// SupplierPurchaseReport aggregates purchases per supplier over a date range.
func SupplierPurchaseReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload dateRangeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		report, err := svc.SupplierPurchase(r.Context(), payload.StartDate, payload.EndDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

type inventoryReportRequest struct {
	ShowLowStockOnly bool   `json:"showLowStockOnly"`
	SortBy           string `json:"sortBy" validate:"omitempty,oneof=qtyAvailable inventoryValue itemName category stockLevel"`
}

type itemPurchaseHistoryRequest struct {
	ItemID    int64      `json:"itemId" validate:"required,gt=0"`
	StartDate types.Date `json:"startDate" validate:"required"`
	EndDate   types.Date `json:"endDate" validate:"required"`
}
