package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"freshreminder/internal/models"

	"github.com/google/uuid"
)

// CartRepository handles cart and cart item data operations. All item
// mutations and the checkout settlement run inside transactions so that
// concurrent calls on the same cart serialize against each other.
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// SettleResult is what a successful settlement produced: the total charged,
// the priced receipt lines, and the cart's owner.
type SettleResult struct {
	UserID string
	Price  int // in cents
	Lines  []models.ReceiptLine
}

// Create opens a new unpaid cart for a user at a store
func (r *CartRepository) Create(userID, storeID string) (*models.Cart, error) {
	cart := &models.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		StoreID:   storeID,
		Paid:      false,
		CreatedAt: time.Now(),
		Items:     []models.CartItem{},
	}

	_, err := r.db.Exec(
		"INSERT INTO carts (cart_id, user_id, store_id, paid, created_at) VALUES (?, ?, ?, ?, ?)",
		cart.ID, cart.UserID, cart.StoreID, cart.Paid, cart.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return cart, nil
}

// GetByID retrieves a cart together with its items
func (r *CartRepository) GetByID(id string) (*models.Cart, error) {
	cart := &models.Cart{}
	err := r.db.QueryRow(
		"SELECT cart_id, user_id, store_id, paid, created_at FROM carts WHERE cart_id = ?", id,
	).Scan(&cart.ID, &cart.UserID, &cart.StoreID, &cart.Paid, &cart.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	rows, err := r.db.Query(
		`SELECT cart_item_id, cart_id, product_id, quantity, added_at
		 FROM cart_items WHERE cart_id = ? ORDER BY added_at`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer rows.Close()

	cart.Items = []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}

	return cart, rows.Err()
}

// AddItem adds a product to a cart. If the cart already holds a line for
// the product the quantities merge into the existing row; a cart never has
// two lines for the same product.
func (r *CartRepository) AddItem(cartID, productID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var paid bool
	err = tx.QueryRow("SELECT paid FROM carts WHERE cart_id = ?", cartID).Scan(&paid)
	if err == sql.ErrNoRows {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if paid {
		return nil, models.ErrCartAlreadyPaid
	}

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM products WHERE product_id = ?)", productID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if !exists {
		return nil, models.ErrProductNotFound
	}

	// Merge into an existing line first; insert only when there is none.
	res, err := tx.Exec(
		"UPDATE cart_items SET quantity = quantity + ? WHERE cart_id = ? AND product_id = ?",
		quantity, cartID, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to merge cart item: %w", err)
	}
	merged, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check merge result: %w", err)
	}

	if merged == 0 {
		_, err = tx.Exec(
			`INSERT INTO cart_items (cart_item_id, cart_id, product_id, quantity, added_at)
			 VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), cartID, productID, quantity, time.Now(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert cart item: %w", err)
		}
	}

	item := &models.CartItem{}
	err = tx.QueryRow(
		`SELECT cart_item_id, cart_id, product_id, quantity, added_at
		 FROM cart_items WHERE cart_id = ? AND product_id = ?`, cartID, productID,
	).Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit item add: %w", err)
	}

	return item, nil
}

// SetQuantity overwrites a cart item's quantity
func (r *CartRepository) SetQuantity(cartID, cartItemID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var paid bool
	err = tx.QueryRow("SELECT paid FROM carts WHERE cart_id = ?", cartID).Scan(&paid)
	if err == sql.ErrNoRows {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if paid {
		return nil, models.ErrCartAlreadyPaid
	}

	res, err := tx.Exec(
		"UPDATE cart_items SET quantity = ? WHERE cart_item_id = ? AND cart_id = ?",
		quantity, cartItemID, cartID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, models.ErrCartItemNotFound
	}

	item := &models.CartItem{}
	err = tx.QueryRow(
		`SELECT cart_item_id, cart_id, product_id, quantity, added_at
		 FROM cart_items WHERE cart_item_id = ?`, cartItemID,
	).Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quantity update: %w", err)
	}

	return item, nil
}

// RemoveItem deletes a cart item. Removal is allowed even on a paid cart;
// TODO: decide whether post-payment removal should be rejected (the fridge
// copy has already been materialized at that point).
func (r *CartRepository) RemoveItem(cartID, cartItemID string) error {
	res, err := r.db.Exec(
		"DELETE FROM cart_items WHERE cart_item_id = ? AND cart_id = ?",
		cartItemID, cartID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal result: %w", err)
	}
	if affected == 0 {
		return models.ErrCartItemNotFound
	}
	return nil
}

// Delete hard-deletes a cart and cascades its items
func (r *CartRepository) Delete(cartID string) error {
	res, err := r.db.Exec("DELETE FROM carts WHERE cart_id = ?", cartID)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return models.ErrCartNotFound
	}
	return nil
}

// PriceCart totals a cart's items at current catalog prices. An empty or
// unknown cart prices to zero rather than erroring.
func (r *CartRepository) PriceCart(cartID string) (int, error) {
	var total sql.NullInt64
	err := r.db.QueryRow(
		`SELECT SUM(ci.quantity * p.price)
		 FROM cart_items ci
		 JOIN products p ON p.product_id = ci.product_id
		 WHERE ci.cart_id = ?`, cartID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to price cart: %w", err)
	}
	if !total.Valid {
		return 0, nil
	}
	return int(total.Int64), nil
}

// Settle performs the paid transition for a cart in a single transaction:
// it prices the items at current catalog prices, flips the cart's paid
// flag, and materializes each item into the owner's fridge. The flip is
// guarded on paid = 0, so when two settlements race exactly one commits
// and the other returns ErrCartAlreadyPaid with nothing changed.
func (r *CartRepository) Settle(cartID string, now time.Time) (*SettleResult, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var userID string
	var paid bool
	err = tx.QueryRow("SELECT user_id, paid FROM carts WHERE cart_id = ?", cartID).Scan(&userID, &paid)
	if err == sql.ErrNoRows {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if paid {
		return nil, models.ErrCartAlreadyPaid
	}

	rows, err := tx.Query(
		`SELECT p.product_name, ci.quantity, p.price, p.shelf_life_days
		 FROM cart_items ci
		 JOIN products p ON p.product_id = ci.product_id
		 WHERE ci.cart_id = ?
		 ORDER BY ci.added_at`, cartID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart items: %w", err)
	}

	type settledItem struct {
		line   models.ReceiptLine
		fridge models.FridgeItem
	}
	var items []settledItem
	total := 0
	for rows.Next() {
		var line models.ReceiptLine
		var shelfLife *int
		if err := rows.Scan(&line.Name, &line.Quantity, &line.Price, &shelfLife); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		total += line.Quantity * line.Price
		fridge := models.FridgeItemFromCartItem(
			models.CartItem{CartID: cartID, Quantity: line.Quantity},
			models.Product{Name: line.Name, ShelfLifeDays: shelfLife},
			userID, now,
		)
		items = append(items, settledItem{line: line, fridge: fridge})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}
	rows.Close()

	// One-way paid transition. Zero rows means another settlement won the
	// race between our read and this write.
	res, err := tx.Exec("UPDATE carts SET paid = 1 WHERE cart_id = ? AND paid = 0", cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark cart paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check paid transition: %w", err)
	}
	if affected == 0 {
		return nil, models.ErrCartAlreadyPaid
	}

	result := &SettleResult{UserID: userID, Price: total}
	for _, item := range items {
		f := item.fridge
		_, err = tx.Exec(
			`INSERT INTO fridge_items (fridge_item_id, user_id, product_name, quantity, best_before_date, status, added_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), f.UserID, f.ProductName, f.Quantity, f.BestBeforeDate, f.Status, f.AddedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to materialize fridge item: %w", err)
		}
		result.Lines = append(result.Lines, item.line)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	return result, nil
}
