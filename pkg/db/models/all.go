package models

// All returns every model for AutoMigrate-style registration.
func All() []any {
	return []any{
		&ItemCategory{},
		&Supplier{},
		&Item{},
		&StockIn{},
		&StockOut{},
		&Restock{},
		&Vehicle{},
		&OwnershipHistory{},
		&UtilityBill{},
		&MonthlyUtilityBill{},
		&Appointment{},
		&Job{},
		&Employee{},
		&User{},
	}
}
