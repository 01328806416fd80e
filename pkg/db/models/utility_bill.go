package models

import "github.com/motorhub/motorhub-backend/pkg/enums"

// UtilityBill is the master record for one utility account.
type UtilityBill struct {
	ID           int64             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BillingAccNo int64             `gorm:"column:billing_acc_no;not null;uniqueIndex" json:"billingAccNo"`
	Type         enums.UtilityType `gorm:"column:type;not null" json:"type"`
	Address      string            `gorm:"column:address" json:"address"`
	MeterNo      string            `gorm:"column:meter_no" json:"meterNo"`
	UnitPrice    float64           `gorm:"column:unit_price;not null" json:"unitPrice"`
}

func (UtilityBill) TableName() string { return "utility_bills" }
