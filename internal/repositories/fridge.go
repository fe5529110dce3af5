package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"freshreminder/internal/models"

	"github.com/google/uuid"
)

// FridgeRepository handles fridge inventory data operations
type FridgeRepository struct {
	db *sql.DB
}

// NewFridgeRepository creates a new fridge repository
func NewFridgeRepository(db *sql.DB) *FridgeRepository {
	return &FridgeRepository{db: db}
}

// Create adds a fridge item for a user
func (r *FridgeRepository) Create(item *models.FridgeItem) (*models.FridgeItem, error) {
	created := *item
	created.ID = uuid.NewString()
	if created.Status == "" {
		created.Status = models.FridgeItemActive
	}
	if created.AddedAt.IsZero() {
		created.AddedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO fridge_items (fridge_item_id, user_id, product_name, quantity, best_before_date, status, added_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.UserID, created.ProductName, created.Quantity,
		created.BestBeforeDate, created.Status, created.AddedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create fridge item: %w", err)
	}

	return &created, nil
}

// GetByUser retrieves a user's active fridge items ordered by best-before date
func (r *FridgeRepository) GetByUser(userID string) ([]*models.FridgeItem, error) {
	rows, err := r.db.Query(
		`SELECT fridge_item_id, user_id, product_name, quantity, best_before_date, status, added_at, consumed_at
		 FROM fridge_items WHERE user_id = ? AND status = ?
		 ORDER BY best_before_date`, userID, models.FridgeItemActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list fridge items: %w", err)
	}
	defer rows.Close()

	var items []*models.FridgeItem
	for rows.Next() {
		item := &models.FridgeItem{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductName, &item.Quantity,
			&item.BestBeforeDate, &item.Status, &item.AddedAt, &item.ConsumedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fridge item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// MarkConsumed soft-removes a fridge item by marking it consumed
func (r *FridgeRepository) MarkConsumed(userID, fridgeItemID string) error {
	res, err := r.db.Exec(
		`UPDATE fridge_items SET status = ?, consumed_at = ?
		 WHERE fridge_item_id = ? AND user_id = ? AND status = ?`,
		models.FridgeItemConsumed, time.Now(), fridgeItemID, userID, models.FridgeItemActive,
	)
	if err != nil {
		return fmt.Errorf("failed to mark fridge item consumed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check consume result: %w", err)
	}
	if affected == 0 {
		return models.ErrFridgeItemNotFound
	}
	return nil
}

// CountByUser returns how many active items a user's fridge holds
func (r *FridgeRepository) CountByUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM fridge_items WHERE user_id = ? AND status = ?",
		userID, models.FridgeItemActive,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count fridge items: %w", err)
	}
	return count, nil
}

// SeedDefaults creates the starter fridge items for a fresh account
func (r *FridgeRepository) SeedDefaults(userID string) error {
	now := time.Now()
	defaults := []struct {
		name string
		qty  int
		days int
	}{
		{"Milk", 1, 7},
		{"Eggs", 12, 14},
		{"Butter", 1, 30},
	}

	for _, d := range defaults {
		_, err := r.Create(&models.FridgeItem{
			UserID:         userID,
			ProductName:    d.name,
			Quantity:       d.qty,
			BestBeforeDate: now.AddDate(0, 0, d.days),
			Status:         models.FridgeItemActive,
			AddedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("failed to seed fridge item %s: %w", d.name, err)
		}
	}

	return nil
}
