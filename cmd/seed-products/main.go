package main

import (
	"log"

	"freshreminder/internal/config"
	"freshreminder/internal/database"
	"freshreminder/internal/models"
	"freshreminder/internal/repositories"
)

func intPtr(v int) *int { return &v }

func main() {
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

	productRepo := repositories.NewProductRepository(db.DB)

	store, err := productRepo.CreateStore("FreshMart Downtown")
	if err != nil {
		log.Fatal("Failed to create store:", err)
	}
	log.Printf("Created store %s (%s)", store.Name, store.ID)

	products := []models.ProductCreateRequest{
		{StoreID: store.ID, Name: "Whole Milk 1L", Price: 189, ShelfLifeDays: intPtr(7)},
		{StoreID: store.ID, Name: "Free-Range Eggs (12)", Price: 449, ShelfLifeDays: intPtr(14)},
		{StoreID: store.ID, Name: "Butter 250g", Price: 329, ShelfLifeDays: intPtr(30)},
		{StoreID: store.ID, Name: "Sourdough Bread", Price: 399, ShelfLifeDays: intPtr(4)},
		{StoreID: store.ID, Name: "Cheddar 400g", Price: 599, ShelfLifeDays: intPtr(21)},
		{StoreID: store.ID, Name: "Bananas 1kg", Price: 149, ShelfLifeDays: intPtr(5)},
		{StoreID: store.ID, Name: "Canned Tomatoes", Price: 119},
	}

	for i := range products {
		product, err := productRepo.Create(&products[i])
		if err != nil {
			log.Fatalf("Failed to create product %s: %v", products[i].Name, err)
		}
		log.Printf("Created product %s (%s)", product.Name, product.ID)
	}

	log.Println("Seeding complete")
}
