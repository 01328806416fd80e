package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
)

// UpdateUserInput carries the mutable account fields. Passwords change only
// through the auth flow.
type UpdateUserInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

// Service exposes account administration.
type Service interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type service struct {
	repo *Repository
}

// NewService constructs the user service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo}, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return err
}

func (s *service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	return user, nil
}

func (s *service) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*models.User, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Phone = input.Phone
	if input.Role != "" {
		role, err := parseRole(input.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}

	saved, err := s.repo.SaveUser(ctx, user)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email already in use")
		}
		return nil, err
	}
	return saved, nil
}

func (s *service) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.repo.FindUserByID(ctx, id); err != nil {
		return notFoundOr(err, "user not found")
	}
	return s.repo.DeleteUser(ctx, id)
}

func parseRole(value string) (enums.UserRole, error) {
	role, err := enums.ParseUserRole(value)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user role")
	}
	return role, nil
}
