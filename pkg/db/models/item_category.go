package models

// ItemCategory names a family of stocked items.
type ItemCategory struct {
	ItemCtgryID   int64  `gorm:"column:item_ctgry_id;primaryKey;autoIncrement" json:"itemCtgryId"`
	ItemCtgryName string `gorm:"column:item_ctgry_name;not null" json:"itemCtgryName"`
}

func (ItemCategory) TableName() string { return "item_categories" }
