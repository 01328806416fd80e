package models

import (
	"github.com/motorhub/motorhub-backend/pkg/enums"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// Employee is a member of the workshop staff.
type Employee struct {
	EmpID     int64              `gorm:"column:emp_id;primaryKey;autoIncrement" json:"empId"`
	Firstname string             `gorm:"column:firstname;not null" json:"firstname"`
	Lastname  string             `gorm:"column:lastname;not null" json:"lastname"`
	Role      enums.EmployeeRole `gorm:"column:role;not null" json:"role"`
	Contact   string             `gorm:"column:contact" json:"contact"`
	NIC       string             `gorm:"column:nic" json:"nic"`
	DOB       types.Date         `gorm:"column:dob;not null" json:"dob"`
	Gender    string             `gorm:"column:gender" json:"gender"`
	Salary    float64            `gorm:"column:salary;not null" json:"salary"`
}

func (Employee) TableName() string { return "employees" }
