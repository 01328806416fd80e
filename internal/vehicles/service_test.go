package vehicles

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/motorhub/motorhub-backend/pkg/config"
	"github.com/motorhub/motorhub-backend/pkg/db"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	dsn := "file:vehicles_" + uuid.NewString() + "?mode=memory&cache=shared"
	client, err := db.New(context.Background(), config.DBConfig{Driver: "sqlite", DSN: dsn}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.DB().AutoMigrate(&models.Vehicle{}, &models.OwnershipHistory{}))

	svc, err := NewService(NewRepository(client.DB()), client)
	require.NoError(t, err)
	return svc
}

func seedVehicle(t *testing.T, svc Service, registration string) *models.Vehicle {
	t.Helper()
	created, err := svc.CreateVehicle(context.Background(), &models.Vehicle{
		VehicleRegistrationNo: registration,
		VehicleType:           "Car",
		OwnerName:             "Nimal Perera",
		ContactNo:             "0771234567",
		Mileage:               52000,
	})
	require.NoError(t, err)
	return created
}

func TestCreateVehicleDuplicateRegistration(t *testing.T) {
	svc := newTestService(t)
	seedVehicle(t, svc, "WP CAB-1234")

	_, err := svc.CreateVehicle(context.Background(), &models.Vehicle{
		VehicleRegistrationNo: "WP CAB-1234",
		VehicleType:           "Van",
		OwnerName:             "Other",
		ContactNo:             "0770000000",
	})
	if err == nil {
		t.Fatal("expected duplicate registration to be rejected")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransferOwnershipSnapshotsPreviousOwner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	vehicle := seedVehicle(t, svc, "WP CAB-1234")

	transferred, err := svc.TransferOwnership(ctx, vehicle.ID, TransferOwnershipInput{
		NewOwnerName:    "Kamal Silva",
		NewOwnerContact: "0719876543",
	})
	require.NoError(t, err)

	if transferred.OwnerName != "Kamal Silva" || transferred.ContactNo != "0719876543" {
		t.Fatalf("expected owner fields overwritten, got %+v", transferred)
	}

	history, err := svc.OwnershipHistory(ctx, vehicle.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	record := history[0]
	if record.PreviousOwnerName != "Nimal Perera" || record.PreviousOwnerContact != "0771234567" {
		t.Fatalf("expected previous owner snapshot, got %+v", record)
	}
	if record.NewOwnerName != "Kamal Silva" || record.NewOwnerContact != "0719876543" {
		t.Fatalf("expected incoming owner recorded, got %+v", record)
	}
	if record.TransferDate.IsZero() {
		t.Fatal("expected transfer date to be stamped")
	}
}

func TestOwnershipHistoryNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	vehicle := seedVehicle(t, svc, "WP CAB-1234")

	_, err := svc.TransferOwnership(ctx, vehicle.ID, TransferOwnershipInput{NewOwnerName: "Second", NewOwnerContact: "071"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.TransferOwnership(ctx, vehicle.ID, TransferOwnershipInput{NewOwnerName: "Third", NewOwnerContact: "072"})
	require.NoError(t, err)

	history, err := svc.OwnershipHistory(ctx, vehicle.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	if history[0].NewOwnerName != "Third" || history[1].NewOwnerName != "Second" {
		t.Fatalf("expected newest transfer first, got %+v", history)
	}
	// The chain links: the second transfer's previous owner is the first's new owner.
	if history[0].PreviousOwnerName != "Second" {
		t.Fatalf("expected chained snapshot, got %+v", history[0])
	}
}

func TestTransferOwnershipMissingVehicle(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.TransferOwnership(context.Background(), 404, TransferOwnershipInput{NewOwnerName: "X"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClearOwnershipHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	vehicle := seedVehicle(t, svc, "WP CAB-1234")

	_, err := svc.TransferOwnership(ctx, vehicle.ID, TransferOwnershipInput{NewOwnerName: "Second", NewOwnerContact: "071"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearOwnershipHistory(ctx, vehicle.ID))

	history, err := svc.OwnershipHistory(ctx, vehicle.ID)
	require.NoError(t, err)
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d records", len(history))
	}

	if err := svc.ClearOwnershipHistory(ctx, 404); err == nil {
		t.Fatal("expected missing vehicle to be rejected")
	}
}
