package repository

import (
	"context"

	"github.com/Silvia-kc/Project-Germany/entity"

	"gorm.io/gorm"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db}
}

func (r *CarRepository) Create(ctx context.Context, car *entity.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Exists reports whether a listing with this id is present.
func (r *CarRepository) Exists(ctx context.Context, carID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Car{}).
		Where("id = ?", carID).
		Count(&count).Error
	return count > 0, err
}

// ListWithBrand returns all cars with their brand preloaded, ordered by
// brand name then model for the catalog view.
func (r *CarRepository) ListWithBrand(ctx context.Context) ([]entity.Car, error) {
	cars := []entity.Car{}
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Joins("JOIN brands ON brands.id = cars.brand_id").
		Order("brands.name ASC, cars.model ASC").
		Find(&cars).Error
	return cars, err
}

// ListBySeller returns one seller's cars, newest first.
func (r *CarRepository) ListBySeller(ctx context.Context, sellerID uint) ([]entity.Car, error) {
	cars := []entity.Car{}
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id DESC").
		Find(&cars).Error
	return cars, err
}

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db}
}

func (r *BrandRepository) List(ctx context.Context) ([]entity.Brand, error) {
	brands := []entity.Brand{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *BrandRepository) Exists(ctx context.Context, brandID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Brand{}).
		Where("id = ?", brandID).
		Count(&count).Error
	return count > 0, err
}
