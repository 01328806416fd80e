package controllers

import (
	"net/http"

	"github.com/motorhub/motorhub-backend/api/responses"
	"github.com/motorhub/motorhub-backend/api/validators"
	employeesvc "github.com/motorhub/motorhub-backend/internal/employees"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/logger"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

func ListEmployees(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employees, err := svc.ListEmployees(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, employees)
	}
}

func GetEmployee(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		employee, err := svc.GetEmployee(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, employee)
	}
}

func SaveEmployee(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload employeeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		employee, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.CreateEmployee(r.Context(), employee)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func UpdateEmployee(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload employeeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		employee, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.UpdateEmployee(r.Context(), id, employee)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func DeleteEmployee(svc employeesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteEmployee(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": id})
	}
}

type employeeRequest struct {
	Firstname string     `json:"firstname" validate:"required"`
	Lastname  string     `json:"lastname" validate:"required"`
	Role      string     `json:"role" validate:"required"`
	Contact   string     `json:"contact"`
	NIC       string     `json:"nic"`
	DOB       types.Date `json:"dob" validate:"required"`
	Gender    string     `json:"gender"`
	Salary    float64    `json:"salary" validate:"gte=0"`
}

func (p employeeRequest) toModel() (*models.Employee, error) {
	role, err := enums.ParseEmployeeRole(p.Role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid employee role")
	}
	return &models.Employee{
		Firstname: p.Firstname,
		Lastname:  p.Lastname,
		Role:      role,
		Contact:   p.Contact,
		NIC:       p.NIC,
		DOB:       p.DOB,
		Gender:    p.Gender,
		Salary:    p.Salary,
	}, nil
}
