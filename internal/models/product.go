package models

import (
	"errors"
	"strings"
	"time"
)

// DefaultShelfLifeDays is used when a product carries no shelf-life metadata.
const DefaultShelfLifeDays = 7

// Product represents an item in a store's catalog
type Product struct {
	ID            string    `json:"product_id" db:"product_id"`
	StoreID       string    `json:"store_id" db:"store_id"`
	Name          string    `json:"product_name" db:"product_name"`
	Price         int       `json:"price" db:"price"` // in cents
	ShelfLifeDays *int      `json:"shelf_life_days,omitempty" db:"shelf_life_days"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// BestBeforeFrom derives a best-before date from the product's shelf life.
func (p *Product) BestBeforeFrom(now time.Time) time.Time {
	days := DefaultShelfLifeDays
	if p.ShelfLifeDays != nil && *p.ShelfLifeDays > 0 {
		days = *p.ShelfLifeDays
	}
	return now.AddDate(0, 0, days)
}

// ProductCreateRequest represents the data needed to create a catalog product
type ProductCreateRequest struct {
	StoreID       string `json:"store_id"`
	Name          string `json:"product_name"`
	Price         int    `json:"price"` // in cents
	ShelfLifeDays *int   `json:"shelf_life_days,omitempty"`
}

// Validate validates product creation data
func (req *ProductCreateRequest) Validate() error {
	if strings.TrimSpace(req.StoreID) == "" {
		return errors.New("store_id is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("product_name is required")
	}
	if req.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if req.ShelfLifeDays != nil && *req.ShelfLifeDays <= 0 {
		return errors.New("shelf_life_days must be positive")
	}
	return nil
}
