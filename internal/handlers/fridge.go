package handlers

import (
	"net/http"
	"time"

	"freshreminder/internal/middleware"
	"freshreminder/internal/models"
	"freshreminder/internal/services"

	"github.com/go-chi/chi/v5"
)

// FridgeHandler handles fridge inventory requests
type FridgeHandler struct {
	fridgeService services.FridgeServiceInterface
}

// NewFridgeHandler creates a new fridge handler
func NewFridgeHandler(fridgeService services.FridgeServiceInterface) *FridgeHandler {
	return &FridgeHandler{fridgeService: fridgeService}
}

// fridgeItemResponse is a fridge item plus how many days it has left
// before its best-before date.
type fridgeItemResponse struct {
	*models.FridgeItem
	DaysLeft int `json:"days_left"`
}

// ListItems handles GET /fridge (behind RequireUser)
func (h *FridgeHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.fridgeService.ListItems(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	now := time.Now()
	resp := make([]fridgeItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, fridgeItemResponse{FridgeItem: item, DaysLeft: item.DaysLeft(now)})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"items": resp})
}

// ConsumeItem handles DELETE /fridge/{fridge_item_id} (behind RequireUser)
func (h *FridgeHandler) ConsumeItem(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.fridgeService.ConsumeItem(user.ID, chi.URLParam(r, "fridge_item_id")); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "consumed"})
}
