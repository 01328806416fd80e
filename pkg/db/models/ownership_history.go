package models

import "time"

// OwnershipHistory is an append-only audit record of a vehicle owner change.
// Rows are written exactly once per transfer and never mutated.
type OwnershipHistory struct {
	ID                   int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VehicleID            int64     `gorm:"column:vehicle_id;not null;index" json:"vehicleId"`
	PreviousOwnerName    string    `gorm:"column:previous_owner_name;not null" json:"previousOwnerName"`
	PreviousOwnerContact string    `gorm:"column:previous_owner_contact;not null" json:"previousOwnerContact"`
	NewOwnerName         string    `gorm:"column:new_owner_name;not null" json:"newOwnerName"`
	NewOwnerContact      string    `gorm:"column:new_owner_contact;not null" json:"newOwnerContact"`
	TransferDate         time.Time `gorm:"column:transfer_date;not null" json:"transferDate"`
}

func (OwnershipHistory) TableName() string { return "ownership_history" }
