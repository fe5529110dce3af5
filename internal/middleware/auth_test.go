package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"freshreminder/internal/models"
	"freshreminder/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	user *models.User
}

func (f *fakeAuthService) Register(req *models.RegisterRequest) (*services.AuthResponse, error) {
	panic("not used")
}

func (f *fakeAuthService) Login(req *models.LoginRequest) (*services.AuthResponse, error) {
	panic("not used")
}

func (f *fakeAuthService) VerifyAccessToken(token string) (*models.User, error) {
	if token == "good-token" && f.user != nil {
		return f.user, nil
	}
	return nil, models.ErrInvalidToken
}

func TestRequireUser_ValidToken(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "shopper@example.com"}
	mw := NewAuthMiddleware(&fakeAuthService{user: user})

	var seen *models.User
	handler := mw.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/fridge", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.ID)
}

func TestRequireUser_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"bad token", "Bearer wrong-token"},
	}

	user := &models.User{ID: "user-1"}
	mw := NewAuthMiddleware(&fakeAuthService{user: user})
	handler := mw.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/fridge", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGetUserFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUserFromContext(req.Context()))
}
