package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:buyer" json:"role"`

	// Relations — preload only when needed
	Cars []Car `gorm:"foreignKey:SellerID" json:"-"`
}
