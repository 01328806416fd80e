package enums

import (
	"testing"
	"time"
)

func TestMonthNameAndNumber(t *testing.T) {
	name, err := MonthName(1)
	if err != nil || name != "January" {
		t.Fatalf("MonthName(1) = %q, %v", name, err)
	}
	if _, err := MonthName(13); err == nil {
		t.Fatal("expected out-of-range month to fail")
	}

	number, err := MonthNumber(" december ")
	if err != nil || number != 12 {
		t.Fatalf("MonthNumber(december) = %d, %v", number, err)
	}
	if _, err := MonthNumber("Smarch"); err == nil {
		t.Fatal("expected unknown month name to fail")
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf(time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)); got != "July" {
		t.Fatalf("unexpected month: %s", got)
	}
}
