package controllers

import (
	"net/http"

	"github.com/motorhub/motorhub-backend/api/responses"
	"github.com/motorhub/motorhub-backend/api/validators"
	appointmentsvc "github.com/motorhub/motorhub-backend/internal/appointments"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/logger"
)

func ListJobs(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := svc.ListJobs(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, jobs)
	}
}

func GetJob(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		job, err := svc.GetJob(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, job)
	}
}

// SaveJob creates a workshop job; its total cost is recomputed from the task
// and spare-part lines.
func SaveJob(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload jobRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		job, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.CreateJob(r.Context(), job)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func UpdateJob(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload jobRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		job, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.UpdateJob(r.Context(), id, job)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func DeleteJob(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteJob(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}

type jobCostLineRequest struct {
	ItemID int64   `json:"itemId" validate:"omitempty,gte=0"`
	Name   string  `json:"name" validate:"required"`
	Cost   float64 `json:"cost" validate:"gte=0"`
}

type jobRequest struct {
	JobID                     string               `json:"jobId" validate:"required"`
	VehicleRegistrationNumber string               `json:"vehicleRegistrationNumber" validate:"required"`
	ServiceSection            string               `json:"serviceSection" validate:"required"`
	AssignedEmployee          string               `json:"assignedEmployee" validate:"required"`
	Tasks                     []jobCostLineRequest `json:"tasks" validate:"omitempty,dive"`
	SpareParts                []jobCostLineRequest `json:"spareParts" validate:"omitempty,dive"`
	Status                    string               `json:"status"`
}

func (p jobRequest) toModel() (*models.Job, error) {
	status := enums.JobStatusOngoing
	if p.Status != "" {
		parsed, err := enums.ParseJobStatus(p.Status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid job status")
		}
		status = parsed
	}
	return &models.Job{
		JobID:                     p.JobID,
		VehicleRegistrationNumber: p.VehicleRegistrationNumber,
		ServiceSection:            p.ServiceSection,
		AssignedEmployee:          p.AssignedEmployee,
		Tasks:                     toCostLines(p.Tasks),
		SpareParts:                toCostLines(p.SpareParts),
		Status:                    status,
	}, nil
}

func toCostLines(lines []jobCostLineRequest) []models.NamedCostItem {
	out := make([]models.NamedCostItem, 0, len(lines))
	for _, line := range lines {
		out = append(out, models.NamedCostItem{ItemID: line.ItemID, Name: line.Name, Cost: line.Cost})
	}
	return out
}
