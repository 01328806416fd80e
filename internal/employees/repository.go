package employees

import (
	"context"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
)

// Repository persists workshop staff records.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.WithContext(ctx).Order("emp_id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *Repository) FindEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, "emp_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *Repository) SaveEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := r.db.WithContext(ctx).Save(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Employee{}, "emp_id = ?", id).Error
}
