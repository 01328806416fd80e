package appointments

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
)

// Service exposes appointment scheduling and workshop job CRUD.
type Service interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, appointment *models.Appointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error

	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	UpdateJob(ctx context.Context, id int64, job *models.Job) (*models.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}

type service struct {
	repo *Repository
}

// NewService constructs the appointment service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("appointment repository required")
	}
	return &service{repo: repo}, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return err
}

// --- appointments ---

func (s *service) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.repo.ListAppointments(ctx)
}

func (s *service) GetAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	appointment, err := s.repo.FindAppointmentByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "appointment not found")
	}
	return appointment, nil
}

func (s *service) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	appointment.ID = 0
	return s.repo.CreateAppointment(ctx, appointment)
}

func (s *service) UpdateAppointment(ctx context.Context, id int64, appointment *models.Appointment) (*models.Appointment, error) {
	existing, err := s.repo.FindAppointmentByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "appointment not found")
	}
	appointment.ID = existing.ID
	return s.repo.SaveAppointment(ctx, appointment)
}

func (s *service) DeleteAppointment(ctx context.Context, id int64) error {
	if _, err := s.repo.FindAppointmentByID(ctx, id); err != nil {
		return notFoundOr(err, "appointment not found")
	}
	return s.repo.DeleteAppointment(ctx, id)
}

// --- jobs ---

func (s *service) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.repo.ListJobs(ctx)
}

func (s *service) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.repo.FindJobByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "job not found")
	}
	return job, nil
}

func (s *service) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	job.ID = 0
	if job.Status == "" {
		job.Status = enums.JobStatusOngoing
	}
	job.TotalCost = jobTotalCost(job)
	return s.repo.CreateJob(ctx, job)
}

func (s *service) UpdateJob(ctx context.Context, id int64, job *models.Job) (*models.Job, error) {
	existing, err := s.repo.FindJobByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "job not found")
	}
	job.ID = existing.ID
	job.TotalCost = jobTotalCost(job)
	return s.repo.SaveJob(ctx, job)
}

func (s *service) DeleteJob(ctx context.Context, id int64) error {
	if _, err := s.repo.FindJobByID(ctx, id); err != nil {
		return notFoundOr(err, "job not found")
	}
	return s.repo.DeleteJob(ctx, id)
}

// jobTotalCost sums the job's task and spare-part cost lines.
func jobTotalCost(job *models.Job) float64 {
	var total float64
	for _, task := range job.Tasks {
		total += task.Cost
	}
	for _, part := range job.SpareParts {
		total += part.Cost
	}
	return total
}
