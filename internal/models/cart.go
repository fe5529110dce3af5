package models

import (
	"errors"
	"strings"
	"time"
)

// Cart represents a shopper's in-store cart
type Cart struct {
	ID        string     `json:"cart_id" db:"cart_id"`
	UserID    string     `json:"user_id" db:"user_id"`
	StoreID   string     `json:"store_id" db:"store_id"`
	Paid      bool       `json:"paid" db:"paid"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	Items     []CartItem `json:"items,omitempty"`
}

// CartItem represents one product line in a cart. A cart holds at most one
// line per product; repeated adds merge into the existing quantity.
type CartItem struct {
	ID        string    `json:"cart_item_id" db:"cart_item_id"`
	CartID    string    `json:"cart_id" db:"cart_id"`
	ProductID string    `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	AddedAt   time.Time `json:"added_at" db:"added_at"`
}

// CartCreateRequest represents the data needed to open a cart
type CartCreateRequest struct {
	UserID  string `json:"user_id"`
	StoreID string `json:"store_id"`
}

// CartItemAddRequest represents a product add. Quantity defaults to 1.
type CartItemAddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Validate validates cart creation data
func (req *CartCreateRequest) Validate() error {
	if strings.TrimSpace(req.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(req.StoreID) == "" {
		return errors.New("store_id is required")
	}
	return nil
}

// Validate validates an item add, applying the quantity default
func (req *CartItemAddRequest) Validate() error {
	if strings.TrimSpace(req.ProductID) == "" {
		return errors.New("product_id is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// ReceiptLine is one priced line of a settled cart, as it appears on the
// receipt email.
type ReceiptLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"` // unit price in cents
}

// CheckoutResult is the response of a successful checkout.
type CheckoutResult struct {
	Status string `json:"status"`
	Price  int    `json:"price"` // in cents
}
