package employees

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	dsn := "file:employees_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Employee{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestEmployeeLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, &models.Employee{
		Firstname: "Kasun",
		Lastname:  "Fernando",
		Role:      enums.EmployeeRoleMechanic,
		Contact:   "0712223344",
		NIC:       "923456789V",
		DOB:       types.NewDate(1992, time.August, 14),
		Gender:    "Male",
		Salary:    85000,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.EmpID == 0 {
		t.Fatal("expected assigned employee id")
	}

	created.Role = enums.EmployeeRoleSupervisor
	created.Salary = 110000
	updated, err := svc.UpdateEmployee(ctx, created.EmpID, created)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Role != enums.EmployeeRoleSupervisor || updated.Salary != 110000 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := svc.DeleteEmployee(ctx, created.EmpID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err = svc.GetEmployee(ctx, created.EmpID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}
