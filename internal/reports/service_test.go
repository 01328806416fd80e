package reports

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

type fakeStock struct {
	items      []models.Item
	categories []models.ItemCategory
	suppliers  []models.Supplier
	stockIns   []models.StockIn
	stockOuts  []models.StockOut
}

func (f *fakeStock) ListItems(ctx context.Context) ([]models.Item, error) {
	return f.items, nil
}

func (f *fakeStock) FindItemByID(ctx context.Context, id int64) (*models.Item, error) {
	for i := range f.items {
		if f.items[i].ItemID == id {
			return &f.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStock) ListCategories(ctx context.Context) ([]models.ItemCategory, error) {
	return f.categories, nil
}

func (f *fakeStock) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return f.suppliers, nil
}

func (f *fakeStock) ListStockIns(ctx context.Context) ([]models.StockIn, error) {
	return f.stockIns, nil
}

func (f *fakeStock) ListStockInsByItem(ctx context.Context, itemID int64) ([]models.StockIn, error) {
	var out []models.StockIn
	for _, record := range f.stockIns {
		if record.ItemID == itemID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeStock) ListStockInsByItemAndRange(ctx context.Context, itemID int64, start, end types.Date) ([]models.StockIn, error) {
	var out []models.StockIn
	for _, record := range f.stockIns {
		if record.ItemID == itemID && inRange(record.DateAdded, start, end) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeStock) ListStockInsByRange(ctx context.Context, start, end types.Date) ([]models.StockIn, error) {
	var out []models.StockIn
	for _, record := range f.stockIns {
		if inRange(record.DateAdded, start, end) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeStock) ListStockOutsByRange(ctx context.Context, start, end types.Date) ([]models.StockOut, error) {
	var out []models.StockOut
	for _, record := range f.stockOuts {
		if inRange(record.DateUsed, start, end) {
			out = append(out, record)
		}
	}
	return out, nil
}

func inRange(d, start, end types.Date) bool {
	return !d.Before(start) && !d.After(end)
}

func newTestService(t *testing.T, stock *fakeStock) Service {
	t.Helper()
	svc, err := NewService(stock)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return svc
}

func TestInventoryReportValuation(t *testing.T) {
	stock := &fakeStock{
		items: []models.Item{
			{ItemID: 1, ItemCtgryID: 10, SupplierID: 20, ItemName: "Oil Filter", QtyAvailable: 10, SellPrice: 50, StockLevel: enums.StockLevelHigh},
		},
		categories: []models.ItemCategory{{ItemCtgryID: 10, ItemCtgryName: "Filters"}},
		suppliers:  []models.Supplier{{SupplierID: 20, SupplierName: "AutoParts Ltd"}},
		stockIns: []models.StockIn{
			{ItemID: 1, QtyAdded: 5, UnitPrice: 20, DateAdded: types.NewDate(2025, time.January, 5)},
			{ItemID: 1, QtyAdded: 5, UnitPrice: 30, DateAdded: types.NewDate(2025, time.February, 5)},
		},
	}
	svc := newTestService(t, stock)

	report, err := svc.InventoryReport(context.Background(), InventoryReportInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.TotalItems != 1 || len(report.Items) != 1 {
		t.Fatalf("expected one row, got %d", len(report.Items))
	}
	row := report.Items[0]
	if row.AvgPurchasePrice != 25 {
		t.Fatalf("expected avg purchase price 25, got %v", row.AvgPurchasePrice)
	}
	if row.InventoryValue != 500 {
		t.Fatalf("expected inventory value 500, got %v", row.InventoryValue)
	}
	if row.PurchaseValue != 250 {
		t.Fatalf("expected purchase value 250, got %v", row.PurchaseValue)
	}
	if row.CategoryName != "Filters" || row.SupplierName != "AutoParts Ltd" {
		t.Fatalf("unexpected name resolution: %+v", row)
	}
	if report.TotalInventoryValue != 500 || report.TotalPurchaseValue != 250 || report.PotentialProfit != 250 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if len(report.StockLevelCounts) != len(enums.StockLevels()) {
		t.Fatalf("expected a count for every level, got %v", report.StockLevelCounts)
	}
	if report.StockLevelCounts[enums.StockLevelHigh.String()] != 1 {
		t.Fatalf("expected one High item, got %v", report.StockLevelCounts)
	}
}

func TestInventoryReportUnresolvedNames(t *testing.T) {
	stock := &fakeStock{
		items: []models.Item{
			{ItemID: 1, ItemCtgryID: 99, SupplierID: 98, ItemName: "Orphan", QtyAvailable: 1, SellPrice: 10, StockLevel: enums.StockLevelMedium},
		},
	}
	svc := newTestService(t, stock)

	report, err := svc.InventoryReport(context.Background(), InventoryReportInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	row := report.Items[0]
	if row.CategoryName != UnknownName || row.SupplierName != UnknownName {
		t.Fatalf("expected unresolved names to fall back, got %+v", row)
	}
	if row.AvgPurchasePrice != 0 || row.PurchaseValue != 0 {
		t.Fatalf("expected zero purchase valuation without receipts, got %+v", row)
	}
}

func TestInventoryReportLowStockFilter(t *testing.T) {
	stock := &fakeStock{
		items: []models.Item{
			{ItemID: 1, ItemName: "A", QtyAvailable: 20, SellPrice: 5, StockLevel: enums.StockLevelHigh},
			{ItemID: 2, ItemName: "B", QtyAvailable: 2, SellPrice: 5, StockLevel: enums.StockLevelLow},
			{ItemID: 3, ItemName: "C", QtyAvailable: 0, SellPrice: 5, StockLevel: enums.StockLevelCritical},
			{ItemID: 4, ItemName: "D", QtyAvailable: 6, SellPrice: 5, StockLevel: enums.StockLevelMedium},
		},
	}
	svc := newTestService(t, stock)

	report, err := svc.InventoryReport(context.Background(), InventoryReportInput{ShowLowStockOnly: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.TotalItems != 2 {
		t.Fatalf("expected 2 low-stock rows, got %d", report.TotalItems)
	}
	for _, row := range report.Items {
		if row.StockLevel != enums.StockLevelLow.String() && row.StockLevel != enums.StockLevelCritical.String() {
			t.Fatalf("unexpected level in filtered report: %s", row.StockLevel)
		}
	}
	// Counts tally the included rows only.
	if report.StockLevelCounts[enums.StockLevelHigh.String()] != 0 {
		t.Fatalf("expected excluded levels to count zero, got %v", report.StockLevelCounts)
	}
	if report.StockLevelCounts[enums.StockLevelLow.String()] != 1 ||
		report.StockLevelCounts[enums.StockLevelCritical.String()] != 1 {
		t.Fatalf("unexpected counts: %v", report.StockLevelCounts)
	}
}

func TestInventoryReportIgnoresUnknownLevelInCounts(t *testing.T) {
	stock := &fakeStock{
		items: []models.Item{
			{ItemID: 1, ItemName: "A", QtyAvailable: 4, SellPrice: 5, StockLevel: enums.StockLevelMedium},
			{ItemID: 2, ItemName: "B", QtyAvailable: 1, SellPrice: 5, StockLevel: enums.StockLevel("Overflow")},
		},
	}
	svc := newTestService(t, stock)

	report, err := svc.InventoryReport(context.Background(), InventoryReportInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The row itself survives with its stored label; only the tally skips it.
	if report.TotalItems != 2 {
		t.Fatalf("expected both rows, got %d", report.TotalItems)
	}
	if len(report.StockLevelCounts) != len(enums.StockLevels()) {
		t.Fatalf("expected only known levels in counts, got %v", report.StockLevelCounts)
	}
	if _, ok := report.StockLevelCounts["Overflow"]; ok {
		t.Fatalf("unexpected bucket: %v", report.StockLevelCounts)
	}
	if report.StockLevelCounts[enums.StockLevelMedium.String()] != 1 {
		t.Fatalf("unexpected counts: %v", report.StockLevelCounts)
	}
}

func TestInventoryReportSorting(t *testing.T) {
	stock := &fakeStock{
		items: []models.Item{
			{ItemID: 1, ItemCtgryID: 1, ItemName: "zeta", QtyAvailable: 5, SellPrice: 100, StockLevel: enums.StockLevelHigh},
			{ItemID: 2, ItemCtgryID: 2, ItemName: "Alpha", QtyAvailable: 1, SellPrice: 10, StockLevel: enums.StockLevelCritical},
			{ItemID: 3, ItemCtgryID: 1, ItemName: "mid", QtyAvailable: 3, SellPrice: 50, StockLevel: enums.StockLevelLow},
		},
		categories: []models.ItemCategory{
			{ItemCtgryID: 1, ItemCtgryName: "Brakes"},
			{ItemCtgryID: 2, ItemCtgryName: "air"},
		},
	}
	svc := newTestService(t, stock)
	ctx := context.Background()

	names := func(rows []InventoryItemRecord) []int64 {
		ids := make([]int64, len(rows))
		for i, row := range rows {
			ids[i] = row.ItemID
		}
		return ids
	}

	t.Run("default orders by level priority", func(t *testing.T) {
		report, err := svc.InventoryReport(ctx, InventoryReportInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got := names(report.Items)
		if got[0] != 2 || got[1] != 3 || got[2] != 1 {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("item name is case-insensitive", func(t *testing.T) {
		report, err := svc.InventoryReport(ctx, InventoryReportInput{SortBy: SortByItemName})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got := names(report.Items)
		if got[0] != 2 || got[1] != 3 || got[2] != 1 {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("inventory value descends", func(t *testing.T) {
		report, err := svc.InventoryReport(ctx, InventoryReportInput{SortBy: SortByInventoryValue})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got := names(report.Items)
		if got[0] != 1 || got[1] != 3 || got[2] != 2 {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("quantity ascends", func(t *testing.T) {
		report, err := svc.InventoryReport(ctx, InventoryReportInput{SortBy: SortByQtyAvailable})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got := names(report.Items)
		if got[0] != 2 || got[1] != 3 || got[2] != 1 {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("category is case-insensitive", func(t *testing.T) {
		report, err := svc.InventoryReport(ctx, InventoryReportInput{SortBy: SortByCategory})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if report.Items[0].CategoryName != "air" {
			t.Fatalf("expected lowercase category first, got %s", report.Items[0].CategoryName)
		}
	})
}

func TestSalesSummaryGroupsByItem(t *testing.T) {
	start := types.NewDate(2025, time.March, 1)
	end := types.NewDate(2025, time.March, 31)
	stock := &fakeStock{
		items: []models.Item{
			{ItemID: 1, ItemName: "Oil Filter", SellPrice: 50},
		},
		stockIns: []models.StockIn{
			{ItemID: 1, QtyAdded: 5, UnitPrice: 20, DateAdded: types.NewDate(2025, time.January, 5)},
			{ItemID: 1, QtyAdded: 5, UnitPrice: 30, DateAdded: types.NewDate(2025, time.February, 5)},
		},
		stockOuts: []models.StockOut{
			{ItemID: 1, QtyUsed: 2, DateUsed: types.NewDate(2025, time.March, 3)},
			{ItemID: 2, QtyUsed: 1, DateUsed: types.NewDate(2025, time.March, 4)},
			{ItemID: 1, QtyUsed: 3, DateUsed: types.NewDate(2025, time.March, 10)},
			{ItemID: 1, QtyUsed: 9, DateUsed: types.NewDate(2025, time.April, 1)},
		},
	}
	svc := newTestService(t, stock)

	report, err := svc.SalesSummary(context.Background(), start, end)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Item 2 no longer exists and is skipped, not failed.
	if len(report.SalesDetails) != 1 {
		t.Fatalf("expected one detail row, got %d", len(report.SalesDetails))
	}
	detail := report.SalesDetails[0]
	if detail.SoldQty != 5 {
		t.Fatalf("expected 5 sold in range, got %d", detail.SoldQty)
	}
	if detail.PurchasePrice != 25 {
		t.Fatalf("expected mean purchase price 25, got %v", detail.PurchasePrice)
	}
	if detail.SoldPrice != 50 || detail.Revenue != 250 || detail.Expense != 125 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if report.ItemsSold != 5 {
		t.Fatalf("expected 5 items sold, got %d", report.ItemsSold)
	}
	if report.TotalSales != 250 || report.TotalExpenses != 125 {
		t.Fatalf("unexpected totals: %+v", report)
	}
}

func TestSalesSummaryEmptyRange(t *testing.T) {
	svc := newTestService(t, &fakeStock{})

	report, err := svc.SalesSummary(context.Background(),
		types.NewDate(2025, time.March, 1), types.NewDate(2025, time.March, 31))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.SalesDetails) != 0 || report.ItemsSold != 0 || report.TotalSales != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestItemPurchaseHistory(t *testing.T) {
	stock := &fakeStock{
		items: []models.Item{
			{ItemID: 1, ItemCtgryID: 10, ItemName: "Brake Pad", ItemBarcode: 4400, QtyAvailable: 8, StockLevel: enums.StockLevelMedium},
		},
		categories: []models.ItemCategory{{ItemCtgryID: 10, ItemCtgryName: "Brakes"}},
		suppliers:  []models.Supplier{{SupplierID: 20, SupplierName: "AutoParts Ltd"}},
		stockIns: []models.StockIn{
			{ItemID: 1, SupplierID: 20, QtyAdded: 2, UnitPrice: 10, SellPrice: 15, DateAdded: types.NewDate(2025, time.May, 1)},
			{ItemID: 1, SupplierID: 21, QtyAdded: 6, UnitPrice: 20, SellPrice: 28, DateAdded: types.NewDate(2025, time.May, 20)},
			{ItemID: 1, SupplierID: 20, QtyAdded: 4, UnitPrice: 99, DateAdded: types.NewDate(2025, time.June, 2)},
		},
	}
	svc := newTestService(t, stock)

	report, err := svc.ItemPurchaseHistory(context.Background(), 1,
		types.NewDate(2025, time.May, 1), types.NewDate(2025, time.May, 31))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.ItemDetails.ItemName != "Brake Pad" || report.ItemDetails.CategoryName != "Brakes" {
		t.Fatalf("unexpected item details: %+v", report.ItemDetails)
	}
	if report.TotalPurchases != 2 || report.TotalQuantity != 8 {
		t.Fatalf("expected 2 receipts of 8 units, got %d/%d", report.TotalPurchases, report.TotalQuantity)
	}
	// Weighted by quantity: (2*10 + 6*20) / 8.
	if report.AverageUnitPrice != 17.5 {
		t.Fatalf("expected weighted average 17.5, got %v", report.AverageUnitPrice)
	}
	if report.PurchaseHistory[0].SupplierName != "AutoParts Ltd" {
		t.Fatalf("unexpected supplier resolution: %+v", report.PurchaseHistory[0])
	}
	if report.PurchaseHistory[1].SupplierName != UnknownName {
		t.Fatalf("expected unresolved supplier fallback, got %+v", report.PurchaseHistory[1])
	}
}

func TestItemPurchaseHistoryMissingItem(t *testing.T) {
	svc := newTestService(t, &fakeStock{})

	_, err := svc.ItemPurchaseHistory(context.Background(), 404, types.Today(), types.Today())
	if err == nil {
		t.Fatal("expected error for missing item")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSupplierPurchaseAggregation(t *testing.T) {
	stock := &fakeStock{
		suppliers: []models.Supplier{
			{SupplierID: 1, SupplierName: "AutoParts Ltd"},
			{SupplierID: 2, SupplierName: "Lanka Lubricants"},
		},
		stockIns: []models.StockIn{
			{SupplierID: 1, QtyAdded: 5, UnitPrice: 10, DateAdded: types.NewDate(2025, time.July, 1)},
			{SupplierID: 2, QtyAdded: 1, UnitPrice: 500, DateAdded: types.NewDate(2025, time.July, 2)},
			{SupplierID: 1, QtyAdded: 5, UnitPrice: 10, DateAdded: types.NewDate(2025, time.July, 3)},
			{SupplierID: 1, QtyAdded: 99, UnitPrice: 10, DateAdded: types.NewDate(2025, time.August, 3)},
		},
	}
	svc := newTestService(t, stock)

	report, err := svc.SupplierPurchase(context.Background(),
		types.NewDate(2025, time.July, 1), types.NewDate(2025, time.July, 31))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.SuppliersCount != 2 {
		t.Fatalf("expected 2 suppliers, got %d", report.SuppliersCount)
	}
	// Highest spend first.
	if report.Suppliers[0].SupplierName != "Lanka Lubricants" || report.Suppliers[0].TotalCost != 500 {
		t.Fatalf("unexpected leader: %+v", report.Suppliers[0])
	}
	second := report.Suppliers[1]
	if second.Orders != 2 || second.TotalQty != 10 || second.TotalCost != 100 {
		t.Fatalf("unexpected aggregate: %+v", second)
	}
	if report.TotalPurchases != 600 || report.TotalQuantity != 11 {
		t.Fatalf("unexpected totals: %+v", report)
	}
}
