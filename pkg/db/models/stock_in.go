package models

import "github.com/motorhub/motorhub-backend/pkg/types"

// StockIn is an immutable purchase receipt for one item from one supplier.
type StockIn struct {
	StockInID  int64      `gorm:"column:stock_in_id;primaryKey;autoIncrement" json:"stockInID"`
	ItemID     int64      `gorm:"column:item_id;not null;index" json:"itemID"`
	CtgryID    int64      `gorm:"column:ctgry_id;not null" json:"ctgryID"`
	SupplierID int64      `gorm:"column:supplier_id;not null;index" json:"supplierID"`
	QtyAdded   int        `gorm:"column:qty_added;not null" json:"qtyAdded"`
	UnitPrice  float64    `gorm:"column:unit_price;not null" json:"unitPrice"`
	SellPrice  float64    `gorm:"column:sell_price;not null" json:"sellPrice"`
	DateAdded  types.Date `gorm:"column:date_added;not null;index" json:"dateAdded"`
}

func (StockIn) TableName() string { return "stock_in" }
