package vehicles

import (
	"context"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
)

// Repository persists vehicles and their ownership audit trail.
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

func (r *Repository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *Repository) FindVehicleByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *Repository) FindVehicleByRegistrationNo(ctx context.Context, registrationNo string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "vehicle_registration_no = ?", registrationNo).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *Repository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *Repository) SaveVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *Repository) DeleteVehicle(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Vehicle{}, "id = ?", id).Error
}

// --- ownership history ---

func (r *Repository) CreateOwnershipRecord(ctx context.Context, record *models.OwnershipHistory) (*models.OwnershipHistory, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) ListOwnershipHistory(ctx context.Context, vehicleID int64) ([]models.OwnershipHistory, error) {
	var records []models.OwnershipHistory
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("transfer_date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) DeleteOwnershipHistory(ctx context.Context, vehicleID int64) error {
	return r.db.WithContext(ctx).Delete(&models.OwnershipHistory{}, "vehicle_id = ?", vehicleID).Error
}
