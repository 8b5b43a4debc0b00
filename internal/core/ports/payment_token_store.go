package ports

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// ErrPaymentTokenInvalid is returned for unknown, expired or already redeemed tokens.
var ErrPaymentTokenInvalid = errors.New("payment token is invalid or expired")

// PaymentTokenStore issues short-lived one-time payment tokens bound to an order.
type PaymentTokenStore interface {
	// Issue creates a token for orderID and returns it with its expiry.
	Issue(orderID kernel.UUID) (string, time.Time, error)

	// Redeem consumes the token and returns the order it was issued for.
	// A token can be redeemed once.
	Redeem(token string) (kernel.UUID, error)

	// Restore makes a redeemed token redeemable again until its original expiry,
	// for callers whose confirmation failed after Redeem. Returns
	// ErrPaymentTokenInvalid when the token was never redeemed or has expired.
	Restore(token string) error
}
