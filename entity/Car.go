package entity

import (
	"gorm.io/gorm"
)

type Car struct {
	gorm.Model
	BrandID uint  `gorm:"index;not null" json:"brandId"`
	Brand   Brand `json:"-"` // preload for catalog/inbox joins

	// ModelName maps to the "model" column; the struct field can't be
	// called Model because of the embedded gorm.Model.
	ModelName  string  `gorm:"column:model;not null" json:"model"`
	Year       int     `json:"year"`
	Engine     string  `json:"engine"`
	HorsePower int     `gorm:"column:horse_power" json:"horsePower"`
	Gearbox    string  `json:"gearbox"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`

	SellerID uint `gorm:"index" json:"sellerId"`
	Seller   User `json:"-"`

	Messages []Message `gorm:"foreignKey:CarID" json:"-"`
}
