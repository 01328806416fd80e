package models

// Supplier is a parts vendor the center buys from.
type Supplier struct {
	SupplierID    int64  `gorm:"column:supplier_id;primaryKey;autoIncrement" json:"supplierId"`
	SupplierName  string `gorm:"column:supplier_name;not null" json:"supplierName"`
	ContactPerson string `gorm:"column:contact_person;not null" json:"contactPerson"`
	PhoneNumber   string `gorm:"column:phone_number" json:"phoneNumber"`
}

func (Supplier) TableName() string { return "suppliers" }
