package handlers

import (
	"net/http"
	"strings"

	"freshreminder/internal/models"
	"freshreminder/internal/repositories"

	"github.com/go-chi/chi/v5"
)

// ProductHandler handles catalog requests
type ProductHandler struct {
	productRepo *repositories.ProductRepository
}

// NewProductHandler creates a new product handler
func NewProductHandler(productRepo *repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

// ListProducts handles GET /products?store_id=...&q=...
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store_id")
	if storeID == "" {
		respondError(w, http.StatusBadRequest, "store_id is required")
		return
	}

	products, err := h.productRepo.ListByStore(storeID, r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if products == nil {
		products = []*models.Product{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

// GetProduct handles GET /products/{product_id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(chi.URLParam(r, "product_id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.ProductCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productRepo.Create(&req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

type storeCreateRequest struct {
	Name string `json:"store_name"`
}

// CreateStore handles POST /stores
func (h *ProductHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req storeCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "store_name is required")
		return
	}

	store, err := h.productRepo.CreateStore(req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, store)
}
