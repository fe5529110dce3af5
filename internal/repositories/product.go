package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"freshreminder/internal/models"

	"github.com/google/uuid"
)

// ProductRepository handles catalog product data operations
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create adds a product to a store's catalog
func (r *ProductRepository) Create(req *models.ProductCreateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM stores WHERE store_id = ?)", req.StoreID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check store: %w", err)
	}
	if !exists {
		return nil, models.ErrStoreNotFound
	}

	product := &models.Product{
		ID:            uuid.NewString(),
		StoreID:       req.StoreID,
		Name:          req.Name,
		Price:         req.Price,
		ShelfLifeDays: req.ShelfLifeDays,
		CreatedAt:     time.Now(),
	}

	_, err = r.db.Exec(
		`INSERT INTO products (product_id, store_id, product_name, price, shelf_life_days, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		product.ID, product.StoreID, product.Name, product.Price, product.ShelfLifeDays, product.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	product := &models.Product{}
	err := r.db.QueryRow(
		`SELECT product_id, store_id, product_name, price, shelf_life_days, created_at
		 FROM products WHERE product_id = ?`, id,
	).Scan(&product.ID, &product.StoreID, &product.Name, &product.Price, &product.ShelfLifeDays, &product.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// ListByStore retrieves a store's catalog, optionally filtered by a
// case-insensitive name substring
func (r *ProductRepository) ListByStore(storeID, nameFilter string) ([]*models.Product, error) {
	query := `SELECT product_id, store_id, product_name, price, shelf_life_days, created_at
		 FROM products WHERE store_id = ?`
	args := []interface{}{storeID}
	if nameFilter != "" {
		query += " AND product_name LIKE ? COLLATE NOCASE"
		args = append(args, "%"+nameFilter+"%")
	}
	query += " ORDER BY product_name"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.StoreID, &product.Name, &product.Price,
			&product.ShelfLifeDays, &product.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// CreateStore creates a store
func (r *ProductRepository) CreateStore(name string) (*models.Store, error) {
	store := &models.Store{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	_, err := r.db.Exec(
		"INSERT INTO stores (store_id, store_name, created_at) VALUES (?, ?, ?)",
		store.ID, store.Name, store.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return store, nil
}
