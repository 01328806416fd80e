package models

import "github.com/motorhub/motorhub-backend/pkg/types"

// StockOut is an immutable consumption record tied to a service job.
type StockOut struct {
	StockOutID int64      `gorm:"column:stock_out_id;primaryKey;autoIncrement" json:"stockOutID"`
	ItemID     int64      `gorm:"column:item_id;not null;index" json:"itemID"`
	JobID      int64      `gorm:"column:job_id;not null" json:"jobID"`
	VehicleID  int64      `gorm:"column:vehicle_id;not null" json:"vehicleID"`
	QtyUsed    int        `gorm:"column:qty_used;not null" json:"qtyUsed"`
	SoldPrice  float64    `gorm:"column:sold_price;not null" json:"soldPrice"`
	DateUsed   types.Date `gorm:"column:date_used;not null;index" json:"dateUsed"`
}

func (StockOut) TableName() string { return "stock_out" }
