package stock

import "github.com/motorhub/motorhub-backend/pkg/enums"

// DeriveStockLevel classifies an item's restocking urgency from its quantity
// on hand against the reorder threshold. The label is stored on the item row
// so reports can tally by exact string match.
func DeriveStockLevel(qtyAvailable, recorderLevel int) enums.StockLevel {
	if recorderLevel < 1 {
		recorderLevel = 1
	}
	switch {
	case qtyAvailable == 0 || qtyAvailable*4 <= recorderLevel:
		return enums.StockLevelCritical
	case qtyAvailable <= recorderLevel:
		return enums.StockLevelLow
	case qtyAvailable <= 2*recorderLevel:
		return enums.StockLevelMedium
	default:
		return enums.StockLevelHigh
	}
}
