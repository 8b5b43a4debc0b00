package promotion

import (
	"errors"
	"fmt"
)

// ErrPromotionRejected is the sentinel wrapped by every RejectionError.
var ErrPromotionRejected = errors.New("promotion rejected")

// Reason explains why a promo code does not apply.
type Reason string

const (
	ReasonNotFound          Reason = "not_found"
	ReasonInactive          Reason = "inactive"
	ReasonNotStarted        Reason = "not_started"
	ReasonExpired           Reason = "expired"
	ReasonUsageLimitReached Reason = "usage_limit_reached"
	ReasonBelowMinimum      Reason = "below_minimum_amount"
)

// RejectionError carries the normalized code and the first failing rule.
type RejectionError struct {
	Code   string
	Reason Reason
}

// NewRejectionError builds a RejectionError for the given code and reason.
func NewRejectionError(code string, reason Reason) *RejectionError {
	return &RejectionError{Code: code, Reason: reason}
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %q: %s", ErrPromotionRejected, e.Code, e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return ErrPromotionRejected
}
