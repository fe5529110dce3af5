package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freshreminder/internal/middleware"
	"freshreminder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFridgeService struct {
	items      []*models.FridgeItem
	consumeErr error
}

func (f *fakeFridgeService) ListItems(userID string) ([]*models.FridgeItem, error) {
	return f.items, nil
}

func (f *fakeFridgeService) ConsumeItem(userID, fridgeItemID string) error {
	return f.consumeErr
}

func fridgeRequest(user *models.User) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/fridge", nil)
	if user != nil {
		ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)
		req = req.WithContext(ctx)
	}
	return req
}

func TestFridgeHandler_ListItemsWithDaysLeft(t *testing.T) {
	now := time.Now()
	svc := &fakeFridgeService{items: []*models.FridgeItem{
		{ID: "f1", UserID: "user-1", ProductName: "Milk", Quantity: 1, BestBeforeDate: now.AddDate(0, 0, 7).Add(-time.Hour), Status: models.FridgeItemActive},
		{ID: "f2", UserID: "user-1", ProductName: "Eggs", Quantity: 12, BestBeforeDate: now.AddDate(0, 0, -2).Add(-time.Hour), Status: models.FridgeItemActive},
	}}
	handler := NewFridgeHandler(svc)

	w := httptest.NewRecorder()
	handler.ListItems(w, fridgeRequest(&models.User{ID: "user-1"}))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			ProductName string `json:"product_name"`
			DaysLeft    int    `json:"days_left"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Milk", resp.Items[0].ProductName)
	assert.Equal(t, 6, resp.Items[0].DaysLeft, "just under a week counts 6 full days")
	assert.Equal(t, -2, resp.Items[1].DaysLeft)
}

func TestFridgeHandler_ListItemsEmpty(t *testing.T) {
	handler := NewFridgeHandler(&fakeFridgeService{})

	w := httptest.NewRecorder()
	handler.ListItems(w, fridgeRequest(&models.User{ID: "user-1"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestFridgeHandler_ListItemsUnauthenticated(t *testing.T) {
	handler := NewFridgeHandler(&fakeFridgeService{})

	w := httptest.NewRecorder()
	handler.ListItems(w, fridgeRequest(nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFridgeHandler_ConsumeMissingItem(t *testing.T) {
	handler := NewFridgeHandler(&fakeFridgeService{consumeErr: models.ErrFridgeItemNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/fridge/f-missing", nil)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, &models.User{ID: "user-1"})
	w := httptest.NewRecorder()
	handler.ConsumeItem(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
