package employees

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
)

// Service exposes staff record CRUD.
type Service interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, employee *models.Employee) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type service struct {
	repo *Repository
}

// NewService constructs the employee service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("employee repository required")
	}
	return &service{repo: repo}, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return err
}

func (s *service) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *service) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.repo.FindEmployeeByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "employee not found")
	}
	return employee, nil
}

func (s *service) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	employee.EmpID = 0
	return s.repo.CreateEmployee(ctx, employee)
}

func (s *service) UpdateEmployee(ctx context.Context, id int64, employee *models.Employee) (*models.Employee, error) {
	existing, err := s.repo.FindEmployeeByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "employee not found")
	}
	employee.EmpID = existing.EmpID
	return s.repo.SaveEmployee(ctx, employee)
}

func (s *service) DeleteEmployee(ctx context.Context, id int64) error {
	if _, err := s.repo.FindEmployeeByID(ctx, id); err != nil {
		return notFoundOr(err, "employee not found")
	}
	return s.repo.DeleteEmployee(ctx, id)
}
