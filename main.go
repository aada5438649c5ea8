package main

import (
	"fmt"
	"log"

	"github.com/Silvia-kc/Project-Germany/configs"
	"github.com/Silvia-kc/Project-Germany/middlewares"
	"github.com/Silvia-kc/Project-Germany/routes"
	"github.com/Silvia-kc/Project-Germany/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.ImportCars(cfg.CarsFile); err != nil {
		log.Fatalf("import cars failed: %v", err)
	}

	// Realtime hub
	hub := ws.NewHub()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
