package models

import "github.com/motorhub/motorhub-backend/pkg/enums"

// NamedCostItem is a labelled cost line attached to a job, used for both
// tasks and spare parts.
type NamedCostItem struct {
	ItemID int64   `json:"itemId"`
	Name   string  `json:"name"`
	Cost   float64 `json:"cost"`
}

// Job is one workshop job, holding its task and spare-part cost lines.
type Job struct {
	ID                        int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	JobID                     string          `gorm:"column:job_id;not null" json:"jobId"`
	VehicleRegistrationNumber string          `gorm:"column:vehicle_registration_number;not null" json:"vehicleRegistrationNumber"`
	ServiceSection            string          `gorm:"column:service_section;not null" json:"serviceSection"`
	AssignedEmployee          string          `gorm:"column:assigned_employee;not null" json:"assignedEmployee"`
	Tasks                     []NamedCostItem `gorm:"column:tasks;serializer:json" json:"tasks"`
	SpareParts                []NamedCostItem `gorm:"column:spare_parts;serializer:json" json:"spareParts"`
	Status                    enums.JobStatus `gorm:"column:status;not null" json:"status"`
	TotalCost                 float64         `gorm:"column:total_cost;not null;default:0" json:"totalCost"`
}

func (Job) TableName() string { return "jobs" }
