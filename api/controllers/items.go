package controllers

import (
	"net/http"

	"github.com/motorhub/motorhub-backend/api/responses"
	"github.com/motorhub/motorhub-backend/api/validators"
	stocksvc "github.com/motorhub/motorhub-backend/internal/stock"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/logger"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// ListItems returns every stocked item.
func ListItems(svc stocksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// GetItem returns one item by id.
func GetItem(svc stocksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.GetItem(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// SaveItem creates a new item with a derived stock level.
func SaveItem(svc stocksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload itemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.CreateItem(r.Context(), payload.toModel())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// UpdateItem overwrites an existing item.
func UpdateItem(svc stocksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload itemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.UpdateItem(r.Context(), id, payload.toModel())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// DeleteItem removes an item by id.
func DeleteItem(svc stocksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}

type itemRequest struct {
	ItemCtgryID   int64      `json:"itemCtgryID" validate:"required,gt=0"`
	SupplierID    int64      `json:"supplierId" validate:"required,gt=0"`
	ItemName      string     `json:"itemName" validate:"required"`
	ItemBarcode   int64      `json:"itemBarcode" validate:"omitempty,gte=0"`
	RecorderLevel int        `json:"recorderLevel" validate:"required,gt=0"`
	QtyAvailable  int        `json:"qtyAvailable" validate:"gte=0"`
	ItemBrand     string     `json:"itemBrand"`
	SellPrice     float64    `json:"sellPrice" validate:"gte=0"`
	UnitPrice     float64    `json:"unitPrice" validate:"gte=0"`
	RackNo        int        `json:"rackNo" validate:"omitempty,gte=0"`
	UpdatedDate   types.Date `json:"updatedDate"`
}

func (p itemRequest) toModel() *models.Item {
	return &models.Item{
		ItemCtgryID:   p.ItemCtgryID,
		SupplierID:    p.SupplierID,
		ItemName:      p.ItemName,
		ItemBarcode:   p.ItemBarcode,
		RecorderLevel: p.RecorderLevel,
		QtyAvailable:  p.QtyAvailable,
		ItemBrand:     p.ItemBrand,
		SellPrice:     p.SellPrice,
		UnitPrice:     p.UnitPrice,
		RackNo:        p.RackNo,
		UpdatedDate:   p.UpdatedDate,
	}
}
