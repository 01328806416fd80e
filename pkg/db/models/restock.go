package models

import (
	"github.com/motorhub/motorhub-backend/pkg/enums"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// Restock is a replenishment request raised against a supplier.
type Restock struct {
	RestockID     int64               `gorm:"column:restock_id;primaryKey;autoIncrement" json:"restockID"`
	ItemID        int64               `gorm:"column:item_id;not null;index" json:"itemID"`
	SupplierID    int64               `gorm:"column:supplier_id;not null" json:"supplierID"`
	RestockStatus enums.RestockStatus `gorm:"column:restock_status;not null" json:"restockStatus"`
	RestockedQty  int                 `gorm:"column:restocked_qty;not null" json:"restockedQty"`
	Date          types.Date          `gorm:"column:date;not null" json:"date"`
}

func (Restock) TableName() string { return "restocks" }
