package vehicles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
)

// TransferOwnershipInput carries the incoming owner of a vehicle transfer.
type TransferOwnershipInput struct {
	NewOwnerName    string
	NewOwnerContact string
}

// Service exposes vehicle CRUD plus the ownership transfer audit trail.
type Service interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, vehicle *models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error

	TransferOwnership(ctx context.Context, vehicleID int64, input TransferOwnershipInput) (*models.Vehicle, error)
	OwnershipHistory(ctx context.Context, vehicleID int64) ([]models.OwnershipHistory, error)
	ClearOwnershipHistory(ctx context.Context, vehicleID int64) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs the vehicle service.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vehicle repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return err
}

func (s *service) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

func (s *service) GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	vehicle, err := s.repo.FindVehicleByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "vehicle not found")
	}
	return vehicle, nil
}

func (s *service) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	vehicle.ID = 0
	created, err := s.repo.CreateVehicle(ctx, vehicle)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "vehicle registration number already exists")
		}
		return nil, err
	}
	return created, nil
}

func (s *service) UpdateVehicle(ctx context.Context, id int64, vehicle *models.Vehicle) (*models.Vehicle, error) {
	existing, err := s.repo.FindVehicleByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "vehicle not found")
	}
	vehicle.ID = existing.ID
	saved, err := s.repo.SaveVehicle(ctx, vehicle)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "vehicle registration number already exists")
		}
		return nil, err
	}
	return saved, nil
}

func (s *service) DeleteVehicle(ctx context.Context, id int64) error {
	if _, err := s.repo.FindVehicleByID(ctx, id); err != nil {
		return notFoundOr(err, "vehicle not found")
	}
	return s.repo.DeleteVehicle(ctx, id)
}

// TransferOwnership snapshots the outgoing owner into the audit trail and
// overwrites the vehicle's owner fields, atomically.
func (s *service) TransferOwnership(ctx context.Context, vehicleID int64, input TransferOwnershipInput) (*models.Vehicle, error) {
	var transferred *models.Vehicle
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		vehicle, err := repo.FindVehicleByID(ctx, vehicleID)
		if err != nil {
			return notFoundOr(err, "vehicle not found")
		}

		record := &models.OwnershipHistory{
			VehicleID:            vehicle.ID,
			PreviousOwnerName:    vehicle.OwnerName,
			PreviousOwnerContact: vehicle.ContactNo,
			NewOwnerName:         input.NewOwnerName,
			NewOwnerContact:      input.NewOwnerContact,
			TransferDate:         time.Now().UTC(),
		}
		if _, err := repo.CreateOwnershipRecord(ctx, record); err != nil {
			return err
		}

		vehicle.OwnerName = input.NewOwnerName
		vehicle.ContactNo = input.NewOwnerContact
		transferred, err = repo.SaveVehicle(ctx, vehicle)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transferred, nil
}

func (s *service) OwnershipHistory(ctx context.Context, vehicleID int64) ([]models.OwnershipHistory, error) {
	if _, err := s.repo.FindVehicleByID(ctx, vehicleID); err != nil {
		return nil, notFoundOr(err, "vehicle not found")
	}
	return s.repo.ListOwnershipHistory(ctx, vehicleID)
}

func (s *service) ClearOwnershipHistory(ctx context.Context, vehicleID int64) error {
	if _, err := s.repo.FindVehicleByID(ctx, vehicleID); err != nil {
		return notFoundOr(err, "vehicle not found")
	}
	return s.repo.DeleteOwnershipHistory(ctx, vehicleID)
}
