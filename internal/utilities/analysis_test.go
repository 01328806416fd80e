package utilities

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// seedBillingPeriod loads two utility accounts and four invoices:
// January 2025 carries electricity, water, and an orphaned account;
// February 2025 carries electricity only.
func seedBillingPeriod(t *testing.T, svc Service) {
	t.Helper()
	seedAccount(t, svc, 1001, enums.UtilityTypeElectricity, 50)
	seedAccount(t, svc, 1002, enums.UtilityTypeWater, 20)

	seedInvoice(t, svc, models.MonthlyUtilityBill{
		InvoiceNo: 1, BillingAccNo: 1001, BillingMonth: "January", BillingYear: 2025, Units: 100, TotalPayment: 5000,
	})
	seedInvoice(t, svc, models.MonthlyUtilityBill{
		InvoiceNo: 2, BillingAccNo: 1002, BillingMonth: "January", BillingYear: 2025, Units: 50, TotalPayment: 1000,
	})
	seedInvoice(t, svc, models.MonthlyUtilityBill{
		InvoiceNo: 3, BillingAccNo: 9999, BillingMonth: "January", BillingYear: 2025, Units: 10, TotalPayment: 500,
	})
	seedInvoice(t, svc, models.MonthlyUtilityBill{
		InvoiceNo: 4, BillingAccNo: 1001, BillingMonth: "February", BillingYear: 2025, Units: 200, TotalPayment: 10000,
	})
}

func janFeb2025() (types.Date, types.Date) {
	return types.NewDate(2025, time.January, 1), types.NewDate(2025, time.February, 28)
}

func TestMonthlyAnalysisAllTypes(t *testing.T) {
	svc := newTestService(t)
	seedBillingPeriod(t, svc)
	start, end := janFeb2025()

	report, err := svc.MonthlyAnalysis(context.Background(), MonthlyAnalysisInput{
		StartDate: start, EndDate: end, UtilityType: TypeFilterAll,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.TotalBills != 4 || report.TotalUnits != 360 || report.TotalCost != 16500 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if report.AvgMonthlyUnits != 90 || report.AvgMonthlyCost != 4125 {
		t.Fatalf("unexpected averages: %+v", report)
	}

	// January splits per resolved type; the orphaned account groups as Unknown.
	if len(report.MonthlyData) != 4 {
		t.Fatalf("expected 4 breakdown entries, got %d", len(report.MonthlyData))
	}
	first := report.MonthlyData[0]
	if first.Month != "January" || first.UtilityType != enums.UtilityTypeElectricity.String() {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.Units != 100 || first.Cost != 5000 {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.CalculatedCost == nil || *first.CalculatedCost != 5000 {
		t.Fatalf("expected calculated cost 5000, got %+v", first.CalculatedCost)
	}

	unknown := report.MonthlyData[2]
	if unknown.UtilityType != "Unknown" || unknown.Units != 10 {
		t.Fatalf("unexpected unknown entry: %+v", unknown)
	}
	if unknown.CalculatedCost == nil || *unknown.CalculatedCost != 0 {
		t.Fatalf("expected zero calculated cost without an account, got %+v", unknown.CalculatedCost)
	}

	last := report.MonthlyData[3]
	if last.Month != "February" || last.Units != 200 {
		t.Fatalf("expected February last, got %+v", last)
	}
}

func TestMonthlyAnalysisTypeFilter(t *testing.T) {
	svc := newTestService(t)
	seedBillingPeriod(t, svc)
	start, end := janFeb2025()

	report, err := svc.MonthlyAnalysis(context.Background(), MonthlyAnalysisInput{
		StartDate: start, EndDate: end, UtilityType: enums.UtilityTypeElectricity.String(),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.TotalBills != 2 || report.TotalUnits != 300 || report.TotalCost != 15000 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if len(report.MonthlyData) != 2 {
		t.Fatalf("expected one entry per month, got %d", len(report.MonthlyData))
	}
	for _, entry := range report.MonthlyData {
		if entry.UtilityType != enums.UtilityTypeElectricity.String() {
			t.Fatalf("unexpected type: %+v", entry)
		}
		if entry.CalculatedCost != nil {
			t.Fatalf("calculated cost should only appear in all mode: %+v", entry)
		}
	}
}

func TestMonthlyAnalysisNarrative(t *testing.T) {
	svc := newTestService(t)
	seedBillingPeriod(t, svc)
	start, end := janFeb2025()

	report, err := svc.MonthlyAnalysis(context.Background(), MonthlyAnalysisInput{
		StartDate: start, EndDate: end, UtilityType: TypeFilterAll,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := "During the selected period, a total of 360 units were consumed at a cost of Rs. 16500.00. " +
		"The average monthly consumption was 90.00 units with an average cost of Rs. 4125.00." +
		" The highest consumption was in February 2025 with 200 units." +
		" The lowest consumption was in January 2025 with 10 units."
	if report.Analysis != want {
		t.Fatalf("unexpected analysis:\n got: %s\nwant: %s", report.Analysis, want)
	}

	if len(report.Recommendations) != 4 {
		t.Fatalf("expected 4 recommendations, got %v", report.Recommendations)
	}
	if !strings.HasPrefix(report.Recommendations[0], "Consider investigating usage patterns in high consumption months: ") {
		t.Fatalf("unexpected first recommendation: %s", report.Recommendations[0])
	}
	if !strings.Contains(report.Recommendations[0], "February 2025") {
		t.Fatalf("expected February flagged as high consumption: %s", report.Recommendations[0])
	}
}

func TestMonthlyAnalysisEmptyPeriod(t *testing.T) {
	svc := newTestService(t)
	seedBillingPeriod(t, svc)

	report, err := svc.MonthlyAnalysis(context.Background(), MonthlyAnalysisInput{
		StartDate:   types.NewDate(2030, time.January, 1),
		EndDate:     types.NewDate(2030, time.December, 31),
		UtilityType: TypeFilterAll,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.TotalBills != 0 {
		t.Fatalf("expected no bills, got %d", report.TotalBills)
	}
	if report.Analysis != "No data available for the selected period." {
		t.Fatalf("unexpected analysis: %s", report.Analysis)
	}
	if len(report.Recommendations) != 1 ||
		report.Recommendations[0] != "No data available to generate recommendations." {
		t.Fatalf("unexpected recommendations: %v", report.Recommendations)
	}
}

func TestMonthlyAnalysisInvalidTypeFilter(t *testing.T) {
	svc := newTestService(t)
	start, end := janFeb2025()

	_, err := svc.MonthlyAnalysis(context.Background(), MonthlyAnalysisInput{
		StartDate: start, EndDate: end, UtilityType: "Gas",
	})
	if err == nil {
		t.Fatal("expected invalid filter to be rejected")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMonthlyAnalysisInvertedRangeIsEmpty(t *testing.T) {
	svc := newTestService(t)
	seedBillingPeriod(t, svc)
	start, end := janFeb2025()

	report, err := svc.MonthlyAnalysis(context.Background(), MonthlyAnalysisInput{
		StartDate: end, EndDate: start, UtilityType: TypeFilterAll,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.TotalBills != 0 {
		t.Fatalf("expected inverted range to match nothing, got %d bills", report.TotalBills)
	}
}

func TestCostComparison(t *testing.T) {
	svc := newTestService(t)
	seedBillingPeriod(t, svc)
	start, end := janFeb2025()

	report, err := svc.CostComparison(context.Background(), start, end)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.Period != "2025-01-01 to 2025-02-28" {
		t.Fatalf("unexpected period: %s", report.Period)
	}
	// The orphaned invoice counts in the totals but not the table.
	if report.TotalBills != 4 || report.TotalCost != 16500 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if len(report.TypeComparison) != 2 {
		t.Fatalf("expected 2 resolved types, got %v", report.TypeComparison)
	}

	electricity := report.TypeComparison[enums.UtilityTypeElectricity.String()]
	if electricity.TotalUnits != 300 || electricity.TotalCost != 15000 || electricity.BillCount != 2 || electricity.AvgCost != 7500 {
		t.Fatalf("unexpected electricity entry: %+v", electricity)
	}
	water := report.TypeComparison[enums.UtilityTypeWater.String()]
	if water.TotalUnits != 50 || water.TotalCost != 1000 || water.BillCount != 1 || water.AvgCost != 1000 {
		t.Fatalf("unexpected water entry: %+v", water)
	}
}
