package utilities

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// unknownType labels invoices whose billing account no longer resolves.
const unknownType = "Unknown"

// MonthlyAnalysis aggregates invoices whose billing month falls inside the
// range, optionally narrowed to one utility type via the parent account.
func (s *service) MonthlyAnalysis(ctx context.Context, input MonthlyAnalysisInput) (*MonthlyAnalysisReport, error) {
	if input.UtilityType != TypeFilterAll {
		if _, err := enums.ParseUtilityType(input.UtilityType); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid utility type filter")
		}
	}

	invoices, accounts, err := s.loadBillingData(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByBillingMonth(invoices, input.StartDate, input.EndDate)
	if input.UtilityType != TypeFilterAll {
		var keep []models.MonthlyUtilityBill
		for _, invoice := range filtered {
			account, ok := accounts[invoice.BillingAccNo]
			if ok && account.Type.String() == input.UtilityType {
				keep = append(keep, invoice)
			}
		}
		filtered = keep
	}

	report := &MonthlyAnalysisReport{
		TotalBills:  len(filtered),
		MonthlyData: []MonthlyBreakdownEntry{},
	}
	for _, invoice := range filtered {
		report.TotalUnits += invoice.Units
		report.TotalCost += invoice.TotalPayment
	}
	if report.TotalBills > 0 {
		report.AvgMonthlyCost = report.TotalCost / float64(report.TotalBills)
		report.AvgMonthlyUnits = float64(report.TotalUnits) / float64(report.TotalBills)
	}

	report.MonthlyData = buildMonthlyBreakdown(filtered, accounts, input.UtilityType)
	report.Analysis = buildAnalysis(filtered, report)
	report.Recommendations = buildRecommendations(filtered, report.AvgMonthlyUnits)
	return report, nil
}

// CostComparison tabulates the period's invoices per utility type. Invoices
// with an unresolvable account stay out of the table but count in the totals.
func (s *service) CostComparison(ctx context.Context, start, end types.Date) (*CostComparisonReport, error) {
	invoices, accounts, err := s.loadBillingData(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByBillingMonth(invoices, start, end)

	report := &CostComparisonReport{
		Period:         start.String() + " to " + end.String(),
		TypeComparison: map[string]TypeComparisonEntry{},
		TotalBills:     len(filtered),
	}
	for _, invoice := range filtered {
		report.TotalCost += invoice.TotalPayment

		account, ok := accounts[invoice.BillingAccNo]
		if !ok {
			continue
		}
		entry := report.TypeComparison[account.Type.String()]
		entry.TotalUnits += invoice.Units
		entry.TotalCost += invoice.TotalPayment
		entry.BillCount++
		report.TypeComparison[account.Type.String()] = entry
	}
	for utilityType, entry := range report.TypeComparison {
		entry.AvgCost = entry.TotalCost / float64(entry.BillCount)
		report.TypeComparison[utilityType] = entry
	}
	return report, nil
}

func (s *service) loadBillingData(ctx context.Context) ([]models.MonthlyUtilityBill, map[int64]models.UtilityBill, error) {
	invoices, err := s.repo.ListMonthlyBills(ctx)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing monthly bills")
	}
	bills, err := s.repo.ListBills(ctx)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing utility bills")
	}
	accounts := make(map[int64]models.UtilityBill, len(bills))
	for _, bill := range bills {
		accounts[bill.BillingAccNo] = bill
	}
	return invoices, accounts, nil
}

// filterByBillingMonth keeps invoices whose billing month, taken as the first
// day of that month, falls inside [start, end]. Invoices with an unparseable
// month name are dropped.
func filterByBillingMonth(invoices []models.MonthlyUtilityBill, start, end types.Date) []models.MonthlyUtilityBill {
	var filtered []models.MonthlyUtilityBill
	for _, invoice := range invoices {
		monthStart, ok := billingMonthStart(invoice)
		if !ok {
			continue
		}
		if monthStart.Before(start) || monthStart.After(end) {
			continue
		}
		filtered = append(filtered, invoice)
	}
	return filtered
}

func billingMonthStart(invoice models.MonthlyUtilityBill) (types.Date, bool) {
	month, err := enums.MonthNumber(invoice.BillingMonth)
	if err != nil {
		return types.Date{}, false
	}
	return types.NewDate(invoice.BillingYear, time.Month(month), 1), true
}

func buildMonthlyBreakdown(invoices []models.MonthlyUtilityBill, accounts map[int64]models.UtilityBill, typeFilter string) []MonthlyBreakdownEntry {
	type monthGroup struct {
		month    string
		year     int
		invoices []models.MonthlyUtilityBill
	}
	groupsByKey := map[string]*monthGroup{}
	var groupOrder []string
	for _, invoice := range invoices {
		key := invoice.BillingMonth + " " + fmt.Sprint(invoice.BillingYear)
		group, ok := groupsByKey[key]
		if !ok {
			group = &monthGroup{month: invoice.BillingMonth, year: invoice.BillingYear}
			groupsByKey[key] = group
			groupOrder = append(groupOrder, key)
		}
		group.invoices = append(group.invoices, invoice)
	}

	entries := []MonthlyBreakdownEntry{}
	for _, key := range groupOrder {
		group := groupsByKey[key]
		if typeFilter == TypeFilterAll {
			entries = append(entries, breakdownByType(group.month, group.year, group.invoices, accounts)...)
			continue
		}

		entry := MonthlyBreakdownEntry{
			Month:       group.month,
			Year:        group.year,
			UtilityType: typeFilter,
		}
		for _, invoice := range group.invoices {
			entry.Units += invoice.Units
			entry.Cost += invoice.TotalPayment
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Year != entries[j].Year {
			return entries[i].Year < entries[j].Year
		}
		return monthIndex(entries[i].Month) < monthIndex(entries[j].Month)
	})
	return entries
}

// breakdownByType splits one month's invoices per resolved utility type and
// re-prices each type's units at the account's current unit price.
func breakdownByType(month string, year int, invoices []models.MonthlyUtilityBill, accounts map[int64]models.UtilityBill) []MonthlyBreakdownEntry {
	type typeGroup struct {
		invoices []models.MonthlyUtilityBill
	}
	groupsByType := map[string]*typeGroup{}
	var typeOrder []string
	for _, invoice := range invoices {
		utilityType := unknownType
		if account, ok := accounts[invoice.BillingAccNo]; ok {
			utilityType = account.Type.String()
		}
		group, ok := groupsByType[utilityType]
		if !ok {
			group = &typeGroup{}
			groupsByType[utilityType] = group
			typeOrder = append(typeOrder, utilityType)
		}
		group.invoices = append(group.invoices, invoice)
	}

	var entries []MonthlyBreakdownEntry
	for _, utilityType := range typeOrder {
		group := groupsByType[utilityType]
		entry := MonthlyBreakdownEntry{
			Month:       month,
			Year:        year,
			UtilityType: utilityType,
		}
		var unitPrice float64
		for _, invoice := range group.invoices {
			entry.Units += invoice.Units
			entry.Cost += invoice.TotalPayment
			if unitPrice == 0 {
				if account, ok := accounts[invoice.BillingAccNo]; ok {
					unitPrice = account.UnitPrice
				}
			}
		}
		calculated := float64(entry.Units) * unitPrice
		entry.CalculatedCost = &calculated
		entries = append(entries, entry)
	}
	return entries
}

func buildAnalysis(invoices []models.MonthlyUtilityBill, report *MonthlyAnalysisReport) string {
	if len(invoices) == 0 {
		return "No data available for the selected period."
	}

	var analysis strings.Builder
	fmt.Fprintf(&analysis,
		"During the selected period, a total of %d units were consumed at a cost of Rs. %.2f. "+
			"The average monthly consumption was %.2f units with an average cost of Rs. %.2f.",
		report.TotalUnits, report.TotalCost, report.AvgMonthlyUnits, report.AvgMonthlyCost)

	// Ties resolve to the first invoice encountered.
	highest := invoices[0]
	lowest := invoices[0]
	for _, invoice := range invoices[1:] {
		if invoice.Units > highest.Units {
			highest = invoice
		}
		if invoice.Units < lowest.Units {
			lowest = invoice
		}
	}
	fmt.Fprintf(&analysis, " The highest consumption was in %s %d with %d units.",
		highest.BillingMonth, highest.BillingYear, highest.Units)
	fmt.Fprintf(&analysis, " The lowest consumption was in %s %d with %d units.",
		lowest.BillingMonth, lowest.BillingYear, lowest.Units)
	return analysis.String()
}

func buildRecommendations(invoices []models.MonthlyUtilityBill, avgMonthlyUnits float64) []string {
	if len(invoices) == 0 {
		return []string{"No data available to generate recommendations."}
	}

	var recommendations []string
	var highMonths []string
	for _, invoice := range invoices {
		if float64(invoice.Units) > avgMonthlyUnits*1.2 {
			highMonths = append(highMonths, fmt.Sprintf("%s %d", invoice.BillingMonth, invoice.BillingYear))
		}
	}
	if len(highMonths) > 0 {
		recommendations = append(recommendations,
			"Consider investigating usage patterns in high consumption months: "+strings.Join(highMonths, ", "))
	}

	recommendations = append(recommendations,
		"Regular maintenance of utility systems can prevent wastage and unexpected high bills.",
		"Consider implementing energy/water saving measures to reduce consumption and costs.",
		"Monitor monthly usage patterns to quickly identify unusual consumption.",
	)
	return recommendations
}

func monthIndex(name string) int {
	index, err := enums.MonthNumber(name)
	if err != nil {
		return 13
	}
	return index
}
