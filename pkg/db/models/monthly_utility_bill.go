package models

import "github.com/motorhub/motorhub-backend/pkg/types"

// MonthlyUtilityBill is one month's reading/invoice for a utility account.
type MonthlyUtilityBill struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InvoiceNo     int64      `gorm:"column:invoice_no;not null;uniqueIndex" json:"invoiceNo"`
	BillingAccNo  int64      `gorm:"column:billing_acc_no;not null;index" json:"billingAccNo"`
	BillingMonth  string     `gorm:"column:billing_month;not null" json:"billingMonth"`
	BillingYear   int        `gorm:"column:billing_year;not null" json:"billingYear"`
	Units         int        `gorm:"column:units;not null;default:0" json:"units"`
	TotalPayment  float64    `gorm:"column:total_payment;not null" json:"totalPayment"`
	GeneratedDate types.Date `gorm:"column:generated_date" json:"generatedDate"`
}

func (MonthlyUtilityBill) TableName() string { return "monthly_utility_bills" }
