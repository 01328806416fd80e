package utilities

import "github.com/motorhub/motorhub-backend/pkg/types"

// TypeFilterAll disables the utility-type filter on the monthly analysis.
const TypeFilterAll = "all"

// MonthlyAnalysisInput selects the billing months and type to analyse.
type MonthlyAnalysisInput struct {
	StartDate   types.Date
	EndDate     types.Date
	UtilityType string
}

// MonthlyBreakdownEntry is one month (and, when the filter is "all", one
// utility type) of the analysis. CalculatedCost re-prices the consumed units
// at the account's current rate and is only present in "all" mode.
type MonthlyBreakdownEntry struct {
	Month          string   `json:"month"`
	Year           int      `json:"year"`
	UtilityType    string   `json:"utilityType"`
	Units          int      `json:"units"`
	Cost           float64  `json:"cost"`
	CalculatedCost *float64 `json:"calculatedCost,omitempty"`
}

// MonthlyAnalysisReport is the consumption analysis over a billing period.
type MonthlyAnalysisReport struct {
	TotalBills      int                     `json:"totalBills"`
	TotalUnits      int                     `json:"totalUnits"`
	TotalCost       float64                 `json:"totalCost"`
	AvgMonthlyCost  float64                 `json:"avgMonthlyCost"`
	AvgMonthlyUnits float64                 `json:"avgMonthlyUnits"`
	MonthlyData     []MonthlyBreakdownEntry `json:"monthlyData"`
	Analysis        string                  `json:"analysis"`
	Recommendations []string                `json:"recommendations"`
}

// TypeComparisonEntry aggregates one utility type's invoices in the period.
type TypeComparisonEntry struct {
	TotalUnits int     `json:"totalUnits"`
	TotalCost  float64 `json:"totalCost"`
	BillCount  int     `json:"billCount"`
	AvgCost    float64 `json:"avgCost"`
}

// CostComparisonReport sets the utility types side by side over a period.
// Invoices whose billing account cannot be resolved are excluded from the
// per-type table but still counted in the grand totals.
type CostComparisonReport struct {
	Period         string                         `json:"period"`
	TypeComparison map[string]TypeComparisonEntry `json:"typeComparison"`
	TotalBills     int                            `json:"totalBills"`
	TotalCost      float64                        `json:"totalCost"`
}
