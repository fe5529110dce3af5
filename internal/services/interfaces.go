package services

import (
	"time"

	"freshreminder/internal/models"
)

// EmailSender dispatches a single email through the configured transport.
// attachment may be nil for plain HTML mail.
type EmailSender interface {
	Send(to, subject, htmlBody string, attachment []byte, attachmentName string) error
}

// ReceiptNotifier sends a purchase receipt. Implementations are best-effort:
// the checkout flow logs failures and never propagates them.
type ReceiptNotifier interface {
	SendReceipt(toEmail string, lines []models.ReceiptLine, total int) error
}

// CheckoutServiceInterface defines the checkout coordinator as seen by the
// HTTP layer
type CheckoutServiceInterface interface {
	IssueToken(cartID, storeID string) (string, error)
	Checkout(cartID, storeID, token string) (*models.CheckoutResult, error)
}

// CartServiceInterface defines cart operations as seen by the HTTP layer
type CartServiceInterface interface {
	CreateCart(req *models.CartCreateRequest) (*models.Cart, error)
	GetCart(cartID string) (*models.Cart, int, error)
	AddItem(cartID string, req *models.CartItemAddRequest) (*models.CartItem, error)
	SetQuantity(cartID, cartItemID string, quantity int) (*models.CartItem, error)
	RemoveItem(cartID, cartItemID string) error
	DeleteCart(cartID string) error
}

// AuthServiceInterface defines authentication operations as seen by the
// HTTP layer
type AuthServiceInterface interface {
	Register(req *models.RegisterRequest) (*AuthResponse, error)
	Login(req *models.LoginRequest) (*AuthResponse, error)
	VerifyAccessToken(token string) (*models.User, error)
}

// FridgeServiceInterface defines fridge inventory operations as seen by the
// HTTP layer
type FridgeServiceInterface interface {
	ListItems(userID string) ([]*models.FridgeItem, error)
	ConsumeItem(userID, fridgeItemID string) error
}

// AuthResponse is returned after a successful register or login
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *models.User `json:"user"`
}
