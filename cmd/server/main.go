package main

import (
	"fmt"
	"log"
	"net/http"

	"freshreminder/internal/config"
	"freshreminder/internal/database"
	"freshreminder/internal/handlers"
	"freshreminder/internal/middleware"
	"freshreminder/internal/repositories"
	"freshreminder/internal/services"

	"github.com/go-chi/chi/v5"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Println("Database ready at", cfg.Database.Path)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	productRepo := repositories.NewProductRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)
	fridgeRepo := repositories.NewFridgeRepository(db.DB)

	// Initialize email transport: real SMTP when configured, mock otherwise
	var emailSender services.EmailSender
	if cfg.Email.SMTPUser != "" {
		emailSender = services.NewSMTPEmailService(services.EmailConfig{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			SMTPUser:     cfg.Email.SMTPUser,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromEmail:    cfg.Email.FromEmail,
		})
	} else {
		emailSender = services.NewMockEmailService()
	}

	// Initialize services
	tokenService := services.NewTokenService(cfg.Checkout.TokenSecret, cfg.Checkout.TokenTTL)
	pdfService := services.NewPDFService()
	receiptService := services.NewReceiptService(emailSender, pdfService, cfg.Email.OperatorEmail)
	authService := services.NewAuthService(userRepo, fridgeRepo, cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	cartService := services.NewCartService(cartRepo, userRepo)
	checkoutService := services.NewCheckoutService(cartRepo, userRepo, tokenService, receiptService)
	fridgeService := services.NewFridgeService(fridgeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(authMiddleware.RequireUser).Get("/me", authHandler.Me)
	})

	r.Post("/stores", productHandler.CreateStore)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{product_id}", productHandler.GetProduct)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Post("/", cartHandler.CreateCart)
		r.Get("/{cart_id}", cartHandler.GetCart)
		r.Delete("/{cart_id}", cartHandler.DeleteCart)
		r.Post("/{cart_id}/add", cartHandler.AddItem)
		r.Put("/{cart_id}/update/{cart_item_id}/{quantity}", cartHandler.UpdateQuantity)
		r.Delete("/{cart_id}/remove/{cart_item_id}", cartHandler.RemoveItem)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Post("/{store_id}/{cart_id}/token", checkoutHandler.IssueToken)
		r.Post("/{store_id}/{cart_id}", checkoutHandler.Checkout)
	})

	r.Route("/fridge", func(r chi.Router) {
		r.Use(authMiddleware.RequireUser)
		r.Get("/", fridgeHandler.ListItems)
		r.Delete("/{fridge_item_id}", fridgeHandler.ConsumeItem)
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server listening on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
