package models

import (
	"time"

	"github.com/motorhub/motorhub-backend/pkg/enums"
)

// User is an API account. The password column stores an Argon2id hash and is
// never serialized.
type User struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"column:name;not null" json:"name"`
	Email     string         `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Phone     string         `gorm:"column:phone" json:"phone"`
	Role      enums.UserRole `gorm:"column:role;not null" json:"role"`
	Password  string         `gorm:"column:password;not null" json:"-"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
