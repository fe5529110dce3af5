package handlers

import (
	"net/http"
	"strconv"

	"freshreminder/internal/models"
	"freshreminder/internal/services"

	"github.com/go-chi/chi/v5"
)

// CartHandler handles cart requests
type CartHandler struct {
	cartService services.CartServiceInterface
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService services.CartServiceInterface) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// CreateCart handles POST /cart
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	var req models.CartCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.cartService.CreateCart(&req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cart)
}

// cartResponse is a cart plus its running total at current catalog prices
type cartResponse struct {
	*models.Cart
	Total int `json:"total"` // in cents
}

// GetCart handles GET /cart/{cart_id}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cart_id")

	cart, total, err := h.cartService.GetCart(cartID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse{Cart: cart, Total: total})
}

// AddItem handles POST /cart/{cart_id}/add
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cart_id")

	var req models.CartItemAddRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.cartService.AddItem(cartID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// UpdateQuantity handles PUT /cart/{cart_id}/update/{cart_item_id}/{quantity}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cart_id")
	cartItemID := chi.URLParam(r, "cart_item_id")

	quantity, err := strconv.Atoi(chi.URLParam(r, "quantity"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid quantity")
		return
	}

	item, err := h.cartService.SetQuantity(cartID, cartItemID, quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// RemoveItem handles DELETE /cart/{cart_id}/remove/{cart_item_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cart_id")
	cartItemID := chi.URLParam(r, "cart_item_id")

	if err := h.cartService.RemoveItem(cartID, cartItemID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// DeleteCart handles DELETE /cart/{cart_id}
func (h *CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cart_id")

	if err := h.cartService.DeleteCart(cartID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
