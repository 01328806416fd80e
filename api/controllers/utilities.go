package controllers

import (
	"net/http"

	"github.com/motorhub/motorhub-backend/api/responses"
	"github.com/motorhub/motorhub-backend/api/validators"
	utilitysvc "github.com/motorhub/motorhub-backend/internal/utilities"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/logger"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// --- utility accounts ---

func ListUtilityBills(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bills, err := svc.ListBills(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bills)
	}
}

func GetUtilityBill(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		bill, err := svc.GetBill(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bill)
	}
}

func SaveUtilityBill(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload utilityBillRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		bill, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.CreateBill(r.Context(), bill)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func UpdateUtilityBill(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload utilityBillRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		bill, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.UpdateBill(r.Context(), id, bill)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func DeleteUtilityBill(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteBill(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}

// --- monthly invoices ---

func ListMonthlyBills(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bills, err := svc.ListMonthlyBills(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bills)
	}
}

func GetMonthlyBill(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		bill, err := svc.GetMonthlyBill(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bill)
	}
}

func SaveMonthlyBill(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload monthlyBillRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		bill, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.CreateMonthlyBill(r.Context(), bill)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func UpdateMonthlyBill(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload monthlyBillRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		bill, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.UpdateMonthlyBill(r.Context(), id, bill)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func DeleteMonthlyBill(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteMonthlyBill(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}

// --- utility reports ---

// MonthlyUtilityAnalysis aggregates monthly invoices in the billing range.
func MonthlyUtilityAnalysis(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload utilityAnalysisRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		report, err := svc.MonthlyAnalysis(r.Context(), utilitysvc.MonthlyAnalysisInput{
			StartDate:   payload.StartDate,
			EndDate:     payload.EndDate,
			UtilityType: payload.UtilityType,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// UtilityCostComparison tabulates the period's invoices per utility type.
func UtilityCostComparison(svc utilitysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload dateRangeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		report, err := svc.CostComparison(r.Context(), payload.StartDate, payload.EndDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

type utilityBillRequest struct {
	BillingAccNo int64   `json:"billingAccNo" validate:"required,gt=0"`
	Type         string  `json:"type" validate:"required"`
	Address      string  `json:"address"`
	MeterNo      string  `json:"meterNo"`
	UnitPrice    float64 `json:"unitPrice" validate:"gte=0"`
}

func (p utilityBillRequest) toModel() (*models.UtilityBill, error) {
	utilityType, err := enums.ParseUtilityType(p.Type)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid utility type")
	}
	return &models.UtilityBill{
		BillingAccNo: p.BillingAccNo,
		Type:         utilityType,
		Address:      p.Address,
		MeterNo:      p.MeterNo,
		UnitPrice:    p.UnitPrice,
	}, nil
}

type monthlyBillRequest struct {
	InvoiceNo     int64      `json:"invoiceNo" validate:"required,gt=0"`
	BillingAccNo  int64      `json:"billingAccNo" validate:"required,gt=0"`
	BillingMonth  string     `json:"billingMonth" validate:"required"`
	BillingYear   int        `json:"billingYear" validate:"required,gt=0"`
	Units         int        `json:"units" validate:"gte=0"`
	TotalPayment  float64    `json:"totalPayment" validate:"gte=0"`
	GeneratedDate types.Date `json:"generatedDate"`
}

func (p monthlyBillRequest) toModel() (*models.MonthlyUtilityBill, error) {
	if _, err := enums.MonthNumber(p.BillingMonth); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid billing month")
	}
	return &models.MonthlyUtilityBill{
		InvoiceNo:     p.InvoiceNo,
		BillingAccNo:  p.BillingAccNo,
		BillingMonth:  p.BillingMonth,
		BillingYear:   p.BillingYear,
		Units:         p.Units,
		TotalPayment:  p.TotalPayment,
		GeneratedDate: p.GeneratedDate,
	}, nil
}

type utilityAnalysisRequest struct {
	StartDate   types.Date `json:"startDate" validate:"required"`
	EndDate     types.Date `json:"endDate" validate:"required"`
	UtilityType string     `json:"utilityType" validate:"required"`
}

type dateRangeRequest struct {
	StartDate types.Date `json:"startDate" validate:"required"`
	EndDate   types.Date `json:"endDate" validate:"required"`
}
