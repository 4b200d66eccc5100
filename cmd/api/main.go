// server/cmd/api/main.go
package main

import (
	"log"

	"alphaline-portal-api-server/config"
	"alphaline-portal-api-server/internal/api/routes"
	"alphaline-portal-api-server/internal/auth"
	"alphaline-portal-api-server/internal/database"
	"alphaline-portal-api-server/internal/s3"
	"alphaline-portal-api-server/internal/socket"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	auth.JwtSecret = []byte(cfg.JWT.Secret)

	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.SeedSuperAdmin(db); err != nil {
		log.Fatalf("Failed to seed super admin: %v", err)
	}
	if err := database.SeedCountries(db); err != nil {
		log.Fatalf("Failed to seed countries: %v", err)
	}

	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}

	wsHub := socket.NewHub()

	router := routes.SetupRouter(cfg, db, s3Uploader, wsHub)

	log.Printf("Starting %s API server on port %s", cfg.App.Name, cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
