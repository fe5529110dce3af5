package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// User represents a registered shopper
type User struct {
	ID           string    `json:"user_id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Store represents a participating grocery store
type Store struct {
	ID        string    `json:"store_id" db:"store_id"`
	Name      string    `json:"store_name" db:"store_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Email validation regex
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterRequest represents the data needed to create a new user
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates user registration data
func (req *RegisterRequest) Validate() error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// Validate validates login data
func (req *LoginRequest) Validate() error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}
	return nil
}
