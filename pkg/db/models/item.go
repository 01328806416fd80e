package models

import (
	"github.com/motorhub/motorhub-backend/pkg/enums"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// Item is one stocked part or consumable on the shelves.
type Item struct {
	ItemID        int64            `gorm:"column:item_id;primaryKey;autoIncrement" json:"itemID"`
	ItemCtgryID   int64            `gorm:"column:item_ctgry_id;not null" json:"itemCtgryID"`
	SupplierID    int64            `gorm:"column:supplier_id;not null" json:"supplierId"`
	ItemName      string           `gorm:"column:item_name;not null" json:"itemName"`
	ItemBarcode   int64            `gorm:"column:item_barcode" json:"itemBarcode"`
	RecorderLevel int              `gorm:"column:recorder_level;not null;default:1" json:"recorderLevel"`
	QtyAvailable  int              `gorm:"column:qty_available;not null;default:0" json:"qtyAvailable"`
	ItemBrand     string           `gorm:"column:item_brand" json:"itemBrand"`
	SellPrice     float64          `gorm:"column:sell_price;not null" json:"sellPrice"`
	UnitPrice     float64          `gorm:"column:unit_price" json:"unitPrice"`
	StockLevel    enums.StockLevel `gorm:"column:stock_level" json:"stockLevel"`
	RackNo        int              `gorm:"column:rack_no" json:"rackNo"`
	UpdatedDate   types.Date       `gorm:"column:updated_date" json:"updatedDate"`
}

func (Item) TableName() string { return "items" }
