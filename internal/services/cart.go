package services

import (
	"fmt"

	"freshreminder/internal/models"
	"freshreminder/internal/repositories"
)

// CartService owns the cart lifecycle between creation and checkout.
type CartService struct {
	cartRepo *repositories.CartRepository
	userRepo *repositories.UserRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo *repositories.CartRepository, userRepo *repositories.UserRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		userRepo: userRepo,
	}
}

// CreateCart opens a new cart for a user at a store
func (s *CartService) CreateCart(req *models.CartCreateRequest) (*models.Cart, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		return nil, err
	}

	return s.cartRepo.Create(req.UserID, req.StoreID)
}

// GetCart returns a cart with its items and the running total at current
// catalog prices
func (s *CartService) GetCart(cartID string) (*models.Cart, int, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.cartRepo.PriceCart(cartID)
	if err != nil {
		return nil, 0, err
	}

	return cart, total, nil
}

// AddItem adds a product to a cart, merging with any existing line for the
// same product
func (s *CartService) AddItem(cartID string, req *models.CartItemAddRequest) (*models.CartItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.cartRepo.AddItem(cartID, req.ProductID, req.Quantity)
}

// SetQuantity overwrites a cart item's quantity
func (s *CartService) SetQuantity(cartID, cartItemID string, quantity int) (*models.CartItem, error) {
	return s.cartRepo.SetQuantity(cartID, cartItemID, quantity)
}

// RemoveItem deletes a cart item
func (s *CartService) RemoveItem(cartID, cartItemID string) error {
	return s.cartRepo.RemoveItem(cartID, cartItemID)
}

// DeleteCart hard-deletes a cart and its items
func (s *CartService) DeleteCart(cartID string) error {
	return s.cartRepo.Delete(cartID)
}
