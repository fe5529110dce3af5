package services

import (
	"fmt"
	"log"
	"time"

	"freshreminder/internal/models"
	"freshreminder/internal/repositories"
)

// CheckoutService coordinates cart settlement: it validates the checkout
// token, authorizes the cart, performs the one-way paid transition with
// pricing and fridge materialization in a single transaction, and fires the
// receipt email without blocking the response.
type CheckoutService struct {
	cartRepo *repositories.CartRepository
	userRepo *repositories.UserRepository
	tokens   *TokenService
	receipts ReceiptNotifier
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartRepo *repositories.CartRepository,
	userRepo *repositories.UserRepository,
	tokens *TokenService,
	receipts ReceiptNotifier,
) *CheckoutService {
	return &CheckoutService{
		cartRepo: cartRepo,
		userRepo: userRepo,
		tokens:   tokens,
		receipts: receipts,
	}
}

// IssueToken is the point-of-sale action: it binds an open cart to its
// owner in a short-lived signed token the shopper submits to Checkout.
func (s *CheckoutService) IssueToken(cartID, storeID string) (string, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return "", err
	}
	if cart.Paid {
		return "", models.ErrCartAlreadyPaid
	}

	token, err := s.tokens.Issue(cart.ID, cart.UserID, 0)
	if err != nil {
		return "", fmt.Errorf("failed to issue checkout token: %w", err)
	}
	return token, nil
}

// Checkout settles a cart. The token must verify, name this cart, and
// belong to the cart's owner; the cart must not already be paid. On
// success the cart is priced and materialized into the owner's fridge
// atomically, and the receipt email is dispatched in the background;
// a receipt failure never fails the checkout.
func (s *CheckoutService) Checkout(cartID, storeID, token string) (*models.CheckoutResult, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	if claims.CartID != cartID {
		return nil, models.ErrCartMismatch
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart.UserID != user.ID {
		return nil, models.ErrNotCartOwner
	}

	result, err := s.cartRepo.Settle(cartID, time.Now())
	if err != nil {
		return nil, err
	}

	log.Printf("cart %s settled for user %s at store %s: %d cents", cartID, user.ID, storeID, result.Price)

	go s.sendReceipt(cartID, user.Email, result)

	return &models.CheckoutResult{Status: "success", Price: result.Price}, nil
}

// sendReceipt runs off the request path. The settlement has committed by
// the time it is called, so failures are only logged.
func (s *CheckoutService) sendReceipt(cartID, email string, result *repositories.SettleResult) {
	if s.receipts == nil {
		return
	}
	if err := s.receipts.SendReceipt(email, result.Lines, result.Price); err != nil {
		log.Printf("warning: failed to send receipt for cart %s: %v", cartID, err)
	}
}
