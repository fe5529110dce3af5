package services

import (
	"fmt"
	"log"
	"time"

	"freshreminder/internal/models"
	"freshreminder/internal/repositories"
	"freshreminder/internal/utils"

	"github.com/golang-jwt/jwt"
)

// AuthService handles registration, login, and access-token verification.
type AuthService struct {
	userRepo   *repositories.UserRepository
	fridgeRepo *repositories.FridgeRepository
	jwtSecret  []byte
	accessTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo *repositories.UserRepository,
	fridgeRepo *repositories.FridgeRepository,
	jwtSecret string,
	accessTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		fridgeRepo: fridgeRepo,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
	}
}

// Register creates a new user, seeds their starter fridge items, and logs
// them in.
func (s *AuthService) Register(req *models.RegisterRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Email, hash)
	if err != nil {
		return nil, err
	}

	// A fresh account gets a few staples so the fridge view isn't empty.
	// Seeding is cosmetic, so a failure doesn't fail the registration.
	if err := s.fridgeRepo.SeedDefaults(user.ID); err != nil {
		log.Printf("warning: failed to seed fridge for user %s: %v", user.ID, err)
	}

	return s.issueAccessToken(user)
}

// Login verifies credentials and returns an access token
func (s *AuthService) Login(req *models.LoginRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		// Same failure for unknown email and wrong password.
		return nil, models.ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, models.ErrInvalidCredentials
	}

	return s.issueAccessToken(user)
}

// VerifyAccessToken validates a bearer token and loads its user
func (s *AuthService) VerifyAccessToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, models.ErrInvalidToken
	}

	return s.userRepo.GetByID(userID)
}

func (s *AuthService) issueAccessToken(user *models.User) (*AuthResponse, error) {
	expiresAt := time.Now().Add(s.accessTTL)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
