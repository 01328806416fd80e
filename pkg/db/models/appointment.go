package models

import "github.com/motorhub/motorhub-backend/pkg/types"

// Appointment is a scheduled service slot for a vehicle.
type Appointment struct {
	ID                    int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VehicleRegistrationNo string     `gorm:"column:vehicle_registration_no;not null" json:"vehicleRegistrationNo"`
	Date                  types.Date `gorm:"column:date;not null" json:"date"`
	Time                  string     `gorm:"column:time;not null" json:"time"`
	Mileage               float64    `gorm:"column:mileage;not null" json:"mileage"`
}

func (Appointment) TableName() string { return "appointments" }
