package utilities

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// Service exposes utility account and monthly invoice CRUD plus the
// consumption analysis reports.
type Service interface {
	ListBills(ctx context.Context) ([]models.UtilityBill, error)
	GetBill(ctx context.Context, id int64) (*models.UtilityBill, error)
	CreateBill(ctx context.Context, bill *models.UtilityBill) (*models.UtilityBill, error)
	UpdateBill(ctx context.Context, id int64, bill *models.UtilityBill) (*models.UtilityBill, error)
	DeleteBill(ctx context.Context, id int64) error

	ListMonthlyBills(ctx context.Context) ([]models.MonthlyUtilityBill, error)
	GetMonthlyBill(ctx context.Context, id int64) (*models.MonthlyUtilityBill, error)
	CreateMonthlyBill(ctx context.Context, bill *models.MonthlyUtilityBill) (*models.MonthlyUtilityBill, error)
	UpdateMonthlyBill(ctx context.Context, id int64, bill *models.MonthlyUtilityBill) (*models.MonthlyUtilityBill, error)
	DeleteMonthlyBill(ctx context.Context, id int64) error

	MonthlyAnalysis(ctx context.Context, input MonthlyAnalysisInput) (*MonthlyAnalysisReport, error)
	CostComparison(ctx context.Context, start, end types.Date) (*CostComparisonReport, error)
}

type service struct {
	repo *Repository
}

// NewService constructs the utility service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("utility repository required")
	}
	return &service{repo: repo}, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return err
}

// --- utility accounts ---

func (s *service) ListBills(ctx context.Context) ([]models.UtilityBill, error) {
	return s.repo.ListBills(ctx)
}

func (s *service) GetBill(ctx context.Context, id int64) (*models.UtilityBill, error) {
	bill, err := s.repo.FindBillByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "utility bill not found")
	}
	return bill, nil
}

func (s *service) CreateBill(ctx context.Context, bill *models.UtilityBill) (*models.UtilityBill, error) {
	bill.ID = 0
	created, err := s.repo.CreateBill(ctx, bill)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "billing account number already exists")
		}
		return nil, err
	}
	return created, nil
}

func (s *service) UpdateBill(ctx context.Context, id int64, bill *models.UtilityBill) (*models.UtilityBill, error) {
	existing, err := s.repo.FindBillByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "utility bill not found")
	}
	bill.ID = existing.ID
	saved, err := s.repo.SaveBill(ctx, bill)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "billing account number already exists")
		}
		return nil, err
	}
	return saved, nil
}

func (s *service) DeleteBill(ctx context.Context, id int64) error {
	if _, err := s.repo.FindBillByID(ctx, id); err != nil {
		return notFoundOr(err, "utility bill not found")
	}
	return s.repo.DeleteBill(ctx, id)
}

// --- monthly invoices ---

func (s *service) ListMonthlyBills(ctx context.Context) ([]models.MonthlyUtilityBill, error) {
	return s.repo.ListMonthlyBills(ctx)
}

func (s *service) GetMonthlyBill(ctx context.Context, id int64) (*models.MonthlyUtilityBill, error) {
	bill, err := s.repo.FindMonthlyBillByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "monthly bill not found")
	}
	return bill, nil
}

func (s *service) CreateMonthlyBill(ctx context.Context, bill *models.MonthlyUtilityBill) (*models.MonthlyUtilityBill, error) {
	bill.ID = 0
	if bill.GeneratedDate.IsZero() {
		bill.GeneratedDate = types.Today()
	}
	created, err := s.repo.CreateMonthlyBill(ctx, bill)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "invoice number already exists")
		}
		return nil, err
	}
	return created, nil
}

func (s *service) UpdateMonthlyBill(ctx context.Context, id int64, bill *models.MonthlyUtilityBill) (*models.MonthlyUtilityBill, error) {
	existing, err := s.repo.FindMonthlyBillByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "monthly bill not found")
	}
	bill.ID = existing.ID
	saved, err := s.repo.SaveMonthlyBill(ctx, bill)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "invoice number already exists")
		}
		return nil, err
	}
	return saved, nil
}

func (s *service) DeleteMonthlyBill(ctx context.Context, id int64) error {
	if _, err := s.repo.FindMonthlyBillByID(ctx, id); err != nil {
		return notFoundOr(err, "monthly bill not found")
	}
	return s.repo.DeleteMonthlyBill(ctx, id)
}
