package utilities

import (
	"context"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
)

// Repository persists utility accounts and their monthly invoices.
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

// --- utility accounts ---

func (r *Repository) ListBills(ctx context.Context) ([]models.UtilityBill, error) {
	var bills []models.UtilityBill
	if err := r.db.WithContext(ctx).Order("id").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *Repository) FindBillByID(ctx context.Context, id int64) (*models.UtilityBill, error) {
	var bill models.UtilityBill
	if err := r.db.WithContext(ctx).First(&bill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *Repository) CreateBill(ctx context.Context, bill *models.UtilityBill) (*models.UtilityBill, error) {
	if err := r.db.WithContext(ctx).Create(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *Repository) SaveBill(ctx context.Context, bill *models.UtilityBill) (*models.UtilityBill, error) {
	if err := r.db.WithContext(ctx).Save(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *Repository) DeleteBill(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.UtilityBill{}, "id = ?", id).Error
}

// --- monthly invoices ---

func (r *Repository) ListMonthlyBills(ctx context.Context) ([]models.MonthlyUtilityBill, error) {
	var bills []models.MonthlyUtilityBill
	if err := r.db.WithContext(ctx).Order("id").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *Repository) FindMonthlyBillByID(ctx context.Context, id int64) (*models.MonthlyUtilityBill, error) {
	var bill models.MonthlyUtilityBill
	if err := r.db.WithContext(ctx).First(&bill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *Repository) CreateMonthlyBill(ctx context.Context, bill *models.MonthlyUtilityBill) (*models.MonthlyUtilityBill, error) {
	if err := r.db.WithContext(ctx).Create(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *Repository) SaveMonthlyBill(ctx context.Context, bill *models.MonthlyUtilityBill) (*models.MonthlyUtilityBill, error) {
	if err := r.db.WithContext(ctx).Save(bill).Error; err != nil {
		return nil, err
	}
	return bill, nil
}

func (r *Repository) DeleteMonthlyBill(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.MonthlyUtilityBill{}, "id = ?", id).Error
}
