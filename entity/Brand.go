package entity

import (
	"gorm.io/gorm"
)

type Brand struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Cars []Car `gorm:"foreignKey:BrandID" json:"-"`
}
