package main

import (
	"flag"
	"log"
	"time"

	"freshreminder/internal/config"
	"freshreminder/internal/database"
	"freshreminder/internal/models"
	"freshreminder/internal/repositories"
	"freshreminder/internal/services"
)

func main() {
	email := flag.String("email", "test@example.com", "email for the test user")
	password := flag.String("password", "password123", "password for the test user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	fridgeRepo := repositories.NewFridgeRepository(db.DB)
	authService := services.NewAuthService(userRepo, fridgeRepo, cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	resp, err := authService.Register(&models.RegisterRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		log.Fatal("Failed to create test user:", err)
	}

	log.Printf("Created user %s (%s)", resp.User.Email, resp.User.ID)
	log.Printf("Access token (valid until %s):\n%s", resp.ExpiresAt.Format(time.RFC3339), resp.AccessToken)
}
