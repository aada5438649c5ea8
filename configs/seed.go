package configs

import (
	"encoding/json"
	"log"
	"os"

	"github.com/Silvia-kc/Project-Germany/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

type seedCar struct {
	Year       int     `json:"year"`
	Engine     string  `json:"engine"`
	HorsePower int     `json:"horsePower"`
	Gearbox    string  `json:"gearbox"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

// ImportCars loads the brand -> model -> attributes catalog file and
// upserts brands and cars. Missing file is not an error.
func ImportCars(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("skip car import: no catalog file at", path)
			return nil
		}
		return err
	}

	var catalog map[string]map[string]seedCar
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return err
	}

	db := DB()
	for brandName, models := range catalog {
		var brand entity.Brand
		if err := db.FirstOrCreate(&brand, entity.Brand{Name: brandName}).Error; err != nil {
			return err
		}

		for modelName, c := range models {
			var count int64
			if err := db.Model(&entity.Car{}).
				Where("brand_id = ? AND model = ?", brand.ID, modelName).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			car := entity.Car{
				BrandID:    brand.ID,
				ModelName:  modelName,
				Year:       c.Year,
				Engine:     c.Engine,
				HorsePower: c.HorsePower,
				Gearbox:    c.Gearbox,
				Price:      c.Price,
				Image:      c.Image,
			}
			if err := db.Create(&car).Error; err != nil {
				return err
			}
		}
	}

	log.Println("car import completed")
	return nil
}
