package reports

import "github.com/motorhub/motorhub-backend/pkg/types"

// Sort keys accepted by the inventory report.
const (
	SortByQtyAvailable   = "qtyAvailable"
	SortByInventoryValue = "inventoryValue"
	SortByItemName       = "itemName"
	SortByCategory       = "category"
	SortByStockLevel     = "stockLevel"
)

// InventoryReportInput selects and orders the valuation rows.
type InventoryReportInput struct {
	ShowLowStockOnly bool
	SortBy           string
}

// InventoryItemRecord is one valued row of the inventory report.
type InventoryItemRecord struct {
	ItemID           int64   `json:"itemID"`
	ItemName         string  `json:"itemName"`
	CategoryName     string  `json:"categoryName"`
	SupplierName     string  `json:"supplierName"`
	QtyAvailable     int     `json:"qtyAvailable"`
	StockLevel       string  `json:"stockLevel"`
	SellPrice        float64 `json:"sellPrice"`
	AvgPurchasePrice float64 `json:"avgPurchasePrice"`
	InventoryValue   float64 `json:"inventoryValue"`
	PurchaseValue    float64 `json:"purchaseValue"`
}

// InventoryReport is the full valuation output.
type InventoryReport struct {
	Items               []InventoryItemRecord `json:"items"`
	TotalItems          int                   `json:"totalItems"`
	TotalInventoryValue float64               `json:"totalInventoryValue"`
	TotalPurchaseValue  float64               `json:"totalPurchaseValue"`
	PotentialProfit     float64               `json:"potentialProfit"`
	StockLevelCounts    map[string]int        `json:"stockLevelCounts"`
}

// SalesItemDetail is one item group of the sales summary.
type SalesItemDetail struct {
	ItemID        int64   `json:"itemID"`
	ItemName      string  `json:"itemName"`
	SoldQty       int     `json:"soldQty"`
	PurchasePrice float64 `json:"purchasePrice"`
	SoldPrice     float64 `json:"soldPrice"`
	Revenue       float64 `json:"revenue"`
	Expense       float64 `json:"expense"`
}

// SalesSummaryReport aggregates consumption over a date range.
type SalesSummaryReport struct {
	StartDate     types.Date        `json:"startDate"`
	EndDate       types.Date        `json:"endDate"`
	SalesDetails  []SalesItemDetail `json:"salesDetails"`
	ItemsSold     int               `json:"itemsSold"`
	TotalSales    float64           `json:"totalSales"`
	TotalExpenses float64           `json:"totalExpenses"`
}

// PurchaseHistoryEntry is one receipt row of the item purchase history.
type PurchaseHistoryEntry struct {
	DateAdded    types.Date `json:"dateAdded"`
	QtyAdded     int        `json:"qtyAdded"`
	UnitPrice    float64    `json:"unitPrice"`
	SellPrice    float64    `json:"sellPrice"`
	SupplierName string     `json:"supplierName"`
}

// ItemPurchaseHistoryDetails summarizes the item the history belongs to.
type ItemPurchaseHistoryDetails struct {
	ItemName     string `json:"itemName"`
	ItemBarcode  int64  `json:"itemBarcode"`
	CategoryName string `json:"categoryName"`
	QtyAvailable int    `json:"qtyAvailable"`
	StockLevel   string `json:"stockLevel"`
}

// ItemPurchaseHistoryReport is the purchase trail for one item.
type ItemPurchaseHistoryReport struct {
	ItemDetails      ItemPurchaseHistoryDetails `json:"itemDetails"`
	PurchaseHistory  []PurchaseHistoryEntry     `json:"purchaseHistory"`
	TotalPurchases   int                        `json:"totalPurchases"`
	TotalQuantity    int                        `json:"totalQuantity"`
	AverageUnitPrice float64                    `json:"averageUnitPrice"`
}

// SupplierPurchaseRecord aggregates receipts for one supplier.
type SupplierPurchaseRecord struct {
	SupplierID   int64   `json:"supplierID"`
	SupplierName string  `json:"supplierName"`
	Orders       int     `json:"orders"`
	TotalQty     int     `json:"totalQty"`
	TotalCost    float64 `json:"totalCost"`
}

// SupplierPurchaseReport aggregates purchases per supplier over a date range.
type SupplierPurchaseReport struct {
	StartDate      types.Date               `json:"startDate"`
	EndDate        types.Date               `json:"endDate"`
	Suppliers      []SupplierPurchaseRecord `json:"suppliers"`
	SuppliersCount int                      `json:"suppliersCount"`
	TotalPurchases float64                  `json:"totalPurchases"`
	TotalQuantity  int                      `json:"totalQuantity"`
}
