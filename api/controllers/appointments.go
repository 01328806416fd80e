package controllers

import (
	"net/http"

	"github.com/motorhub/motorhub-backend/api/responses"
	"github.com/motorhub/motorhub-backend/api/validators"
	appointmentsvc "github.com/motorhub/motorhub-backend/internal/appointments"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/logger"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

func ListAppointments(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointments, err := svc.ListAppointments(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, appointments)
	}
}

func GetAppointment(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		appointment, err := svc.GetAppointment(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, appointment)
	}
}

func SaveAppointment(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload appointmentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		appointment, err := svc.CreateAppointment(r.Context(), payload.toModel())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, appointment)
	}
}

func UpdateAppointment(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload appointmentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		appointment, err := svc.UpdateAppointment(r.Context(), id, payload.toModel())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, appointment)
	}
}

func DeleteAppointment(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteAppointment(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}

type appointmentRequest struct {
	VehicleRegistrationNo string     `json:"vehicleRegistrationNo" validate:"required"`
	Date                  types.Date `json:"date" validate:"required"`
	Time                  string     `json:"time" validate:"required"`
	Mileage               float64    `json:"mileage" validate:"gte=0"`
}

func (p appointmentRequest) toModel() *models.Appointment {
	return &models.Appointment{
		VehicleRegistrationNo: p.VehicleRegistrationNo,
		Date:                  p.Date,
		Time:                  p.Time,
		Mileage:               p.Mileage,
	}
}
