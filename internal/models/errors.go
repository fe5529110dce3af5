package models

import "errors"

// Common errors used throughout the application
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrStoreNotFound    = errors.New("store not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrFridgeItemNotFound = errors.New("fridge item not found")

	ErrCartAlreadyPaid = errors.New("cart is already paid")
	ErrDuplicateEmail  = errors.New("email is already registered")

	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidInput    = errors.New("invalid input")

	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrCartMismatch       = errors.New("token does not match this cart")
	ErrNotCartOwner       = errors.New("cart does not belong to the user")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
