package handlers

import (
	"errors"
	"net/http"

	"freshreminder/internal/models"
	"freshreminder/internal/services"

	"github.com/go-chi/chi/v5"
)

// CheckoutHandler handles token issuance and cart settlement requests
type CheckoutHandler struct {
	checkoutService services.CheckoutServiceInterface
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService services.CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

type checkoutRequest struct {
	Token string `json:"token"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken handles POST /checkout/{store_id}/{cart_id}/token, the
// point-of-sale side of the handshake
func (h *CheckoutHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	cartID := chi.URLParam(r, "cart_id")

	token, err := h.checkoutService.IssueToken(cartID, storeID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, issueTokenResponse{Token: token})
}

// Checkout handles POST /checkout/{store_id}/{cart_id}
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "store_id")
	cartID := chi.URLParam(r, "cart_id")

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" {
		respondError(w, http.StatusBadRequest, "missing token")
		return
	}

	result, err := h.checkoutService.Checkout(cartID, storeID, req.Token)
	if err != nil {
		// A token naming a missing user is an authorization failure here,
		// not a lookup miss.
		if errors.Is(err, models.ErrUserNotFound) {
			respondError(w, http.StatusForbidden, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
