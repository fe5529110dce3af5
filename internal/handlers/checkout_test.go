package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshreminder/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCheckoutService for testing
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) IssueToken(cartID, storeID string) (string, error) {
	args := m.Called(cartID, storeID)
	return args.String(0), args.Error(1)
}

func (m *MockCheckoutService) Checkout(cartID, storeID, token string) (*models.CheckoutResult, error) {
	args := m.Called(cartID, storeID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutResult), args.Error(1)
}

func newCheckoutRouter(svc *MockCheckoutService) *chi.Mux {
	handler := NewCheckoutHandler(svc)
	r := chi.NewRouter()
	r.Post("/checkout/{store_id}/{cart_id}/token", handler.IssueToken)
	r.Post("/checkout/{store_id}/{cart_id}", handler.Checkout)
	return r
}

func postJSON(t *testing.T, router *chi.Mux, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckoutHandler_Success(t *testing.T) {
	svc := &MockCheckoutService{}
	svc.On("Checkout", "cart-1", "store-1", "valid-token").
		Return(&models.CheckoutResult{Status: "success", Price: 1150}, nil)

	w := postJSON(t, newCheckoutRouter(svc), "/checkout/store-1/cart-1", map[string]string{"token": "valid-token"})

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.CheckoutResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 1150, result.Price)
	svc.AssertExpectations(t)
}

func TestCheckoutHandler_MissingToken(t *testing.T) {
	svc := &MockCheckoutService{}

	w := postJSON(t, newCheckoutRouter(svc), "/checkout/store-1/cart-1", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Checkout")
}

func TestCheckoutHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid token", models.ErrInvalidToken, http.StatusForbidden},
		{"cart mismatch", models.ErrCartMismatch, http.StatusForbidden},
		{"foreign cart", models.ErrNotCartOwner, http.StatusForbidden},
		{"unknown token user", models.ErrUserNotFound, http.StatusForbidden},
		{"already paid", models.ErrCartAlreadyPaid, http.StatusConflict},
		{"missing cart", models.ErrCartNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCheckoutService{}
			svc.On("Checkout", "cart-1", "store-1", "some-token").Return(nil, tt.err)

			w := postJSON(t, newCheckoutRouter(svc), "/checkout/store-1/cart-1", map[string]string{"token": "some-token"})

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCheckoutHandler_IssueToken(t *testing.T) {
	svc := &MockCheckoutService{}
	svc.On("IssueToken", "cart-1", "store-1").Return("signed-token", nil)

	w := postJSON(t, newCheckoutRouter(svc), "/checkout/store-1/cart-1/token", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp issueTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestCheckoutHandler_IssueTokenPaidCart(t *testing.T) {
	svc := &MockCheckoutService{}
	svc.On("IssueToken", "cart-1", "store-1").Return("", models.ErrCartAlreadyPaid)

	w := postJSON(t, newCheckoutRouter(svc), "/checkout/store-1/cart-1/token", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}
