package services

import (
	"context"

	"github.com/Silvia-kc/Project-Germany/entity"
	"github.com/Silvia-kc/Project-Germany/pkg/apperr"
	"github.com/Silvia-kc/Project-Germany/repository"
)

// CarInfo is one catalog entry as the browse UI consumes it.
type CarInfo struct {
	ID         uint    `json:"id"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	Engine     string  `json:"engine"`
	HorsePower int     `json:"horsePower"`
	Gearbox    string  `json:"gearbox"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

type AddCarRequest struct {
	BrandID    uint    `json:"brandId" binding:"required"`
	Model      string  `json:"model" binding:"required"`
	Year       int     `json:"year"`
	Engine     string  `json:"engine"`
	HorsePower int     `json:"horsePower"`
	Gearbox    string  `json:"gearbox"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

type CarService struct {
	cars   *repository.CarRepository
	brands *repository.BrandRepository
}

func NewCarService(cars *repository.CarRepository, brands *repository.BrandRepository) *CarService {
	return &CarService{cars: cars, brands: brands}
}

// Catalog groups all listings as brand -> model -> attributes, the
// shape the browse page renders from. The id is included so the chat
// widget can key its room on the listing, not on display strings.
func (s *CarService) Catalog(ctx context.Context) (map[string]map[string]CarInfo, error) {
	cars, err := s.cars.ListWithBrand(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list cars", err)
	}

	catalog := make(map[string]map[string]CarInfo)
	for _, car := range cars {
		brand := car.Brand.Name
		if catalog[brand] == nil {
			catalog[brand] = make(map[string]CarInfo)
		}
		catalog[brand][car.ModelName] = CarInfo{
			ID:         car.ID,
			Brand:      brand,
			Model:      car.ModelName,
			Year:       car.Year,
			Engine:     car.Engine,
			HorsePower: car.HorsePower,
			Gearbox:    car.Gearbox,
			Price:      car.Price,
			Image:      car.Image,
		}
	}
	return catalog, nil
}

// Brands lists all brands by name.
func (s *CarService) Brands(ctx context.Context) ([]entity.Brand, error) {
	brands, err := s.brands.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list brands", err)
	}
	return brands, nil
}

// ListBySeller returns one seller's own listings, newest first.
func (s *CarService) ListBySeller(ctx context.Context, sellerID uint) ([]entity.Car, error) {
	cars, err := s.cars.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list seller cars", err)
	}
	return cars, nil
}

// AddCar creates a listing for a seller. The role gate lives in the
// route middleware; this only checks the data.
func (s *CarService) AddCar(ctx context.Context, sellerID uint, req AddCarRequest) (*entity.Car, error) {
	exists, err := s.brands.Exists(ctx, req.BrandID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "lookup brand", err)
	}
	if !exists {
		return nil, apperr.New(apperr.Validation, "unknown brand")
	}

	car := &entity.Car{
		BrandID:    req.BrandID,
		ModelName:  req.Model,
		Year:       req.Year,
		Engine:     req.Engine,
		HorsePower: req.HorsePower,
		Gearbox:    req.Gearbox,
		Price:      req.Price,
		Image:      req.Image,
		SellerID:   sellerID,
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "create car", err)
	}
	return car, nil
}
