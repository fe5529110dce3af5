package services

import (
	"freshreminder/internal/models"
	"freshreminder/internal/repositories"
)

// FridgeService exposes a user's fridge inventory. Items enter the fridge
// through checkout settlement or account seeding; this service only reads
// and consumes them.
type FridgeService struct {
	fridgeRepo *repositories.FridgeRepository
}

// NewFridgeService creates a new fridge service
func NewFridgeService(fridgeRepo *repositories.FridgeRepository) *FridgeService {
	return &FridgeService{fridgeRepo: fridgeRepo}
}

// ListItems returns the user's active fridge items, soonest-expiring first
func (s *FridgeService) ListItems(userID string) ([]*models.FridgeItem, error) {
	return s.fridgeRepo.GetByUser(userID)
}

// ConsumeItem marks one of the user's fridge items as consumed
func (s *FridgeService) ConsumeItem(userID, fridgeItemID string) error {
	return s.fridgeRepo.MarkConsumed(userID, fridgeItemID)
}
