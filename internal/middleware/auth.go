package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"freshreminder/internal/models"
	"freshreminder/internal/services"
)

type contextKey string

const (
	// UserContextKey is where RequireUser stores the authenticated user
	UserContextKey contextKey = "user"
)

// AuthMiddleware authenticates requests via bearer access tokens
type AuthMiddleware struct {
	authService services.AuthServiceInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService services.AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireUser rejects requests without a valid bearer token and adds the
// authenticated user to the request context
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauthorized(w, "missing authorization")
			return
		}

		user, err := m.authService.VerifyAccessToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			unauthorized(w, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext returns the authenticated user, or nil outside
// RequireUser
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserContextKey).(*models.User)
	return user
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
