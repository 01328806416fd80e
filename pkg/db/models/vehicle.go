package models

import "time"

// Vehicle is a customer vehicle registered with the service center.
type Vehicle struct {
	ID                    int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VehicleRegistrationNo string    `gorm:"column:vehicle_registration_no;not null;uniqueIndex" json:"vehicleRegistrationNo"`
	VehicleType           string    `gorm:"column:vehicle_type;not null" json:"vehicleType"`
	OwnerName             string    `gorm:"column:owner_name;not null" json:"ownerName"`
	ContactNo             string    `gorm:"column:contact_no;not null" json:"contactNo"`
	Mileage               float64   `gorm:"column:mileage;not null" json:"mileage"`
	LastUpdate            time.Time `gorm:"column:last_update;autoUpdateTime" json:"lastUpdate"`
}

func (Vehicle) TableName() string { return "vehicles" }
