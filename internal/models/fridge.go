package models

import "time"

// FridgeItemStatus represents the lifecycle status of a fridge item
type FridgeItemStatus string

const (
	FridgeItemActive   FridgeItemStatus = "active"
	FridgeItemConsumed FridgeItemStatus = "consumed"
)

// FridgeItem represents a grocery item in a user's fridge inventory
type FridgeItem struct {
	ID             string           `json:"fridge_item_id" db:"fridge_item_id"`
	UserID         string           `json:"user_id" db:"user_id"`
	ProductName    string           `json:"product_name" db:"product_name"`
	Quantity       int              `json:"quantity" db:"quantity"`
	BestBeforeDate time.Time        `json:"best_before_date" db:"best_before_date"`
	Status         FridgeItemStatus `json:"status" db:"status"`
	AddedAt        time.Time        `json:"added_at" db:"added_at"`
	ConsumedAt     *time.Time       `json:"consumed_at,omitempty" db:"consumed_at"`
}

// DaysLeft returns whole days until the best-before date, negative once past.
func (f *FridgeItem) DaysLeft(now time.Time) int {
	return int(f.BestBeforeDate.Sub(now).Hours() / 24)
}

// FridgeItemFromCartItem derives the fridge entry a paid cart line turns
// into: the product's name, the line's quantity, and a best-before date
// from the product's shelf life.
func FridgeItemFromCartItem(item CartItem, product Product, userID string, now time.Time) FridgeItem {
	return FridgeItem{
		UserID:         userID,
		ProductName:    product.Name,
		Quantity:       item.Quantity,
		BestBeforeDate: product.BestBeforeFrom(now),
		Status:         FridgeItemActive,
		AddedAt:        now,
	}
}
