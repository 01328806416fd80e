package utilities

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	dsn := "file:utilities_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.UtilityBill{}, &models.MonthlyUtilityBill{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func seedAccount(t *testing.T, svc Service, accNo int64, utilityType enums.UtilityType, unitPrice float64) {
	t.Helper()
	_, err := svc.CreateBill(context.Background(), &models.UtilityBill{
		BillingAccNo: accNo,
		Type:         utilityType,
		Address:      "123 Service Rd",
		MeterNo:      "M-1",
		UnitPrice:    unitPrice,
	})
	if err != nil {
		t.Fatalf("seed account %d: %v", accNo, err)
	}
}

func seedInvoice(t *testing.T, svc Service, invoice models.MonthlyUtilityBill) {
	t.Helper()
	if _, err := svc.CreateMonthlyBill(context.Background(), &invoice); err != nil {
		t.Fatalf("seed invoice %d: %v", invoice.InvoiceNo, err)
	}
}

func TestCreateBillDuplicateAccount(t *testing.T) {
	svc := newTestService(t)
	seedAccount(t, svc, 1001, enums.UtilityTypeElectricity, 50)

	_, err := svc.CreateBill(context.Background(), &models.UtilityBill{
		BillingAccNo: 1001,
		Type:         enums.UtilityTypeWater,
		UnitPrice:    20,
	})
	if err == nil {
		t.Fatal("expected duplicate account to be rejected")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateMonthlyBillDefaultsGeneratedDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	seedAccount(t, svc, 1001, enums.UtilityTypeElectricity, 50)

	created, err := svc.CreateMonthlyBill(ctx, &models.MonthlyUtilityBill{
		InvoiceNo:    5001,
		BillingAccNo: 1001,
		BillingMonth: "January",
		BillingYear:  2025,
		Units:        100,
		TotalPayment: 5000,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.GeneratedDate.IsZero() {
		t.Fatal("expected generated date to default to today")
	}

	_, err = svc.CreateMonthlyBill(ctx, &models.MonthlyUtilityBill{
		InvoiceNo:    5001,
		BillingAccNo: 1001,
		BillingMonth: "February",
		BillingYear:  2025,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetBillNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetBill(context.Background(), 404)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = svc.GetMonthlyBill(context.Background(), 404)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}
