package appointments

import (
	"context"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
)

// Repository persists appointments and workshop jobs.
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

// --- appointments ---

func (r *Repository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Order("date, time").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *Repository) FindAppointmentByID(ctx context.Context, id int64) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *Repository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

func (r *Repository) SaveAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if err := r.db.WithContext(ctx).Save(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

func (r *Repository) DeleteAppointment(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error
}

// --- jobs ---

func (r *Repository) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Order("id").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Repository) FindJobByID(ctx context.Context, id int64) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *Repository) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) SaveJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) DeleteJob(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error
}
