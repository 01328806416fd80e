package reports

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// stockReader is the slice of stock persistence the report engine needs.
type stockReader interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	FindItemByID(ctx context.Context, id int64) (*models.Item, error)
	ListCategories(ctx context.Context) ([]models.ItemCategory, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	ListStockIns(ctx context.Context) ([]models.StockIn, error)
	ListStockInsByItem(ctx context.Context, itemID int64) ([]models.StockIn, error)
	ListStockInsByItemAndRange(ctx context.Context, itemID int64, start, end types.Date) ([]models.StockIn, error)
	ListStockInsByRange(ctx context.Context, start, end types.Date) ([]models.StockIn, error)
	ListStockOutsByRange(ctx context.Context, start, end types.Date) ([]models.StockOut, error)
}

// Service computes the read-only inventory, sales, and purchasing reports.
type Service interface {
	InventoryReport(ctx context.Context, input InventoryReportInput) (*InventoryReport, error)
	SalesSummary(ctx context.Context, start, end types.Date) (*SalesSummaryReport, error)
	ItemPurchaseHistory(ctx context.Context, itemID int64, start, end types.Date) (*ItemPurchaseHistoryReport, error)
	SupplierPurchase(ctx context.Context, start, end types.Date) (*SupplierPurchaseReport, error)
}

type service struct {
	stock stockReader
}

// NewService builds the report service.
func NewService(stock stockReader) (Service, error) {
	if stock == nil {
		return nil, errors.New("reports: stock reader is required")
	}
	return &service{stock: stock}, nil
}

// InventoryReport values every item at its current sell price against the
// running mean of its purchase prices.
func (s *service) InventoryReport(ctx context.Context, input InventoryReportInput) (*InventoryReport, error) {
	items, err := s.stock.ListItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing items")
	}
	categories, err := s.categoryResolver(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierResolver(ctx)
	if err != nil {
		return nil, err
	}
	receipts, err := s.stock.ListStockIns(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing stock receipts")
	}

	avgByItem := averageUnitPrices(receipts)

	report := &InventoryReport{
		Items:            []InventoryItemRecord{},
		StockLevelCounts: map[string]int{},
	}
	for _, level := range enums.StockLevels() {
		report.StockLevelCounts[level.String()] = 0
	}

	totalInventory := decimal.Zero
	totalPurchase := decimal.Zero
	for _, item := range items {
		if input.ShowLowStockOnly &&
			item.StockLevel != enums.StockLevelLow && item.StockLevel != enums.StockLevelCritical {
			continue
		}

		avg := avgByItem[item.ItemID]
		qty := decimal.NewFromInt(int64(item.QtyAvailable))
		inventoryValue := qty.Mul(decimal.NewFromFloat(item.SellPrice))
		purchaseValue := qty.Mul(avg)

		report.Items = append(report.Items, InventoryItemRecord{
			ItemID:           item.ItemID,
			ItemName:         item.ItemName,
			CategoryName:     categories.Resolve(item.ItemCtgryID),
			SupplierName:     suppliers.Resolve(item.SupplierID),
			QtyAvailable:     item.QtyAvailable,
			StockLevel:       item.StockLevel.String(),
			SellPrice:        item.SellPrice,
			AvgPurchasePrice: avg.InexactFloat64(),
			InventoryValue:   inventoryValue.InexactFloat64(),
			PurchaseValue:    purchaseValue.InexactFloat64(),
		})
		if item.StockLevel.IsValid() {
			report.StockLevelCounts[item.StockLevel.String()]++
		}
		totalInventory = totalInventory.Add(inventoryValue)
		totalPurchase = totalPurchase.Add(purchaseValue)
	}

	sortInventoryRecords(report.Items, input.SortBy)

	report.TotalItems = len(report.Items)
	report.TotalInventoryValue = totalInventory.InexactFloat64()
	report.TotalPurchaseValue = totalPurchase.InexactFloat64()
	report.PotentialProfit = totalInventory.Sub(totalPurchase).InexactFloat64()
	return report, nil
}

// SalesSummary groups stock consumption in the range by item. Records whose
// item no longer exists are skipped rather than failing the report.
func (s *service) SalesSummary(ctx context.Context, start, end types.Date) (*SalesSummaryReport, error) {
	outs, err := s.stock.ListStockOutsByRange(ctx, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing stock consumption")
	}

	soldByItem := map[int64]int{}
	var order []int64
	for _, out := range outs {
		if _, seen := soldByItem[out.ItemID]; !seen {
			order = append(order, out.ItemID)
		}
		soldByItem[out.ItemID] += out.QtyUsed
	}

	report := &SalesSummaryReport{
		StartDate:    start,
		EndDate:      end,
		SalesDetails: []SalesItemDetail{},
	}
	totalSales := decimal.Zero
	totalExpenses := decimal.Zero
	for _, itemID := range order {
		item, err := s.stock.FindItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving sold item")
		}
		receipts, err := s.stock.ListStockInsByItem(ctx, itemID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing item receipts")
		}

		soldQty := soldByItem[itemID]
		purchasePrice := meanUnitPrice(receipts)
		soldPrice := decimal.NewFromFloat(item.SellPrice)
		qty := decimal.NewFromInt(int64(soldQty))
		revenue := qty.Mul(soldPrice)
		expense := qty.Mul(purchasePrice)

		report.SalesDetails = append(report.SalesDetails, SalesItemDetail{
			ItemID:        itemID,
			ItemName:      item.ItemName,
			SoldQty:       soldQty,
			PurchasePrice: purchasePrice.InexactFloat64(),
			SoldPrice:     item.SellPrice,
			Revenue:       revenue.InexactFloat64(),
			Expense:       expense.InexactFloat64(),
		})
		report.ItemsSold += soldQty
		totalSales = totalSales.Add(revenue)
		totalExpenses = totalExpenses.Add(expense)
	}

	report.TotalSales = totalSales.InexactFloat64()
	report.TotalExpenses = totalExpenses.InexactFloat64()
	return report, nil
}

// ItemPurchaseHistory lists the receipts for one item in the range with a
// weighted average unit price.
func (s *service) ItemPurchaseHistory(ctx context.Context, itemID int64, start, end types.Date) (*ItemPurchaseHistoryReport, error) {
	item, err := s.stock.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding item")
	}
	categories, err := s.categoryResolver(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierResolver(ctx)
	if err != nil {
		return nil, err
	}
	receipts, err := s.stock.ListStockInsByItemAndRange(ctx, itemID, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing item receipts")
	}

	report := &ItemPurchaseHistoryReport{
		ItemDetails: ItemPurchaseHistoryDetails{
			ItemName:     item.ItemName,
			ItemBarcode:  item.ItemBarcode,
			CategoryName: categories.Resolve(item.ItemCtgryID),
			QtyAvailable: item.QtyAvailable,
			StockLevel:   item.StockLevel.String(),
		},
		PurchaseHistory: []PurchaseHistoryEntry{},
	}

	totalCost := decimal.Zero
	for _, receipt := range receipts {
		report.PurchaseHistory = append(report.PurchaseHistory, PurchaseHistoryEntry{
			DateAdded:    receipt.DateAdded,
			QtyAdded:     receipt.QtyAdded,
			UnitPrice:    receipt.UnitPrice,
			SellPrice:    receipt.SellPrice,
			SupplierName: suppliers.Resolve(receipt.SupplierID),
		})
		report.TotalQuantity += receipt.QtyAdded
		totalCost = totalCost.Add(
			decimal.NewFromInt(int64(receipt.QtyAdded)).Mul(decimal.NewFromFloat(receipt.UnitPrice)))
	}
	report.TotalPurchases = len(receipts)
	if report.TotalQuantity > 0 {
		report.AverageUnitPrice = totalCost.
			Div(decimal.NewFromInt(int64(report.TotalQuantity))).
			InexactFloat64()
	}
	return report, nil
}

// SupplierPurchase aggregates every receipt in the range per supplier.
func (s *service) SupplierPurchase(ctx context.Context, start, end types.Date) (*SupplierPurchaseReport, error) {
	receipts, err := s.stock.ListStockInsByRange(ctx, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing stock receipts")
	}
	suppliers, err := s.supplierResolver(ctx)
	if err != nil {
		return nil, err
	}

	type supplierAgg struct {
		orders int
		qty    int
		cost   decimal.Decimal
	}
	aggs := map[int64]*supplierAgg{}
	var order []int64
	grandCost := decimal.Zero
	for _, receipt := range receipts {
		agg, ok := aggs[receipt.SupplierID]
		if !ok {
			agg = &supplierAgg{}
			aggs[receipt.SupplierID] = agg
			order = append(order, receipt.SupplierID)
		}
		cost := decimal.NewFromInt(int64(receipt.QtyAdded)).Mul(decimal.NewFromFloat(receipt.UnitPrice))
		agg.orders++
		agg.qty += receipt.QtyAdded
		agg.cost = agg.cost.Add(cost)
		grandCost = grandCost.Add(cost)
	}

	report := &SupplierPurchaseReport{
		StartDate: start,
		EndDate:   end,
		Suppliers: []SupplierPurchaseRecord{},
	}
	for _, supplierID := range order {
		agg := aggs[supplierID]
		report.Suppliers = append(report.Suppliers, SupplierPurchaseRecord{
			SupplierID:   supplierID,
			SupplierName: suppliers.Resolve(supplierID),
			Orders:       agg.orders,
			TotalQty:     agg.qty,
			TotalCost:    agg.cost.InexactFloat64(),
		})
		report.TotalQuantity += agg.qty
	}
	sort.SliceStable(report.Suppliers, func(i, j int) bool {
		return report.Suppliers[i].TotalCost > report.Suppliers[j].TotalCost
	})
	report.SuppliersCount = len(report.Suppliers)
	report.TotalPurchases = grandCost.InexactFloat64()
	return report, nil
}

func (s *service) categoryResolver(ctx context.Context) (*NameResolver, error) {
	categories, err := s.stock.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing categories")
	}
	resolver := NewNameResolver()
	for _, category := range categories {
		resolver.Add(category.ItemCtgryID, category.ItemCtgryName)
	}
	return resolver, nil
}

func (s *service) supplierResolver(ctx context.Context) (*NameResolver, error) {
	suppliers, err := s.stock.ListSuppliers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing suppliers")
	}
	resolver := NewNameResolver()
	for _, supplier := range suppliers {
		resolver.Add(supplier.SupplierID, supplier.SupplierName)
	}
	return resolver, nil
}

// averageUnitPrices returns the arithmetic mean of receipt unit prices per
// item. Items with no receipts are absent and value at zero.
func averageUnitPrices(receipts []models.StockIn) map[int64]decimal.Decimal {
	sums := map[int64]decimal.Decimal{}
	counts := map[int64]int64{}
	for _, receipt := range receipts {
		sums[receipt.ItemID] = sums[receipt.ItemID].Add(decimal.NewFromFloat(receipt.UnitPrice))
		counts[receipt.ItemID]++
	}
	averages := make(map[int64]decimal.Decimal, len(sums))
	for itemID, sum := range sums {
		averages[itemID] = sum.Div(decimal.NewFromInt(counts[itemID]))
	}
	return averages
}

func meanUnitPrice(receipts []models.StockIn) decimal.Decimal {
	if len(receipts) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, receipt := range receipts {
		sum = sum.Add(decimal.NewFromFloat(receipt.UnitPrice))
	}
	return sum.Div(decimal.NewFromInt(int64(len(receipts))))
}

func sortInventoryRecords(records []InventoryItemRecord, sortBy string) {
	less := func(i, j InventoryItemRecord) bool {
		return levelPriority(i.StockLevel) < levelPriority(j.StockLevel)
	}
	switch sortBy {
	case SortByQtyAvailable:
		less = func(i, j InventoryItemRecord) bool { return i.QtyAvailable < j.QtyAvailable }
	case SortByInventoryValue:
		less = func(i, j InventoryItemRecord) bool { return i.InventoryValue > j.InventoryValue }
	case SortByItemName:
		less = func(i, j InventoryItemRecord) bool {
			return strings.ToLower(i.ItemName) < strings.ToLower(j.ItemName)
		}
	case SortByCategory:
		less = func(i, j InventoryItemRecord) bool {
			return strings.ToLower(i.CategoryName) < strings.ToLower(j.CategoryName)
		}
	}
	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}

func levelPriority(level string) int {
	return enums.StockLevel(level).Priority()
}
