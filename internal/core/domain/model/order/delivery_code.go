package order

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// DeliveryCodeLength is the number of digits of a delivery code.
const DeliveryCodeLength = 6

// ErrInvalidDeliveryCode is returned when the submitted code does not match the stored one.
var ErrInvalidDeliveryCode = fmt.Errorf("delivery code is invalid")

var deliveryCodeSpace = big.NewInt(1_000_000)

// DeliveryCode is the one-time numeric code the customer relays to the courier.
type DeliveryCode string

// NewDeliveryCode draws a uniformly distributed 6-digit code from crypto/rand.
func NewDeliveryCode() (DeliveryCode, error) {
	n, err := rand.Int(rand.Reader, deliveryCodeSpace)
	if err != nil {
		return "", fmt.Errorf("generate delivery code: %w", err)
	}
	return DeliveryCode(fmt.Sprintf("%0*d", DeliveryCodeLength, n.Int64())), nil
}

// IsZero reports whether no code is set.
func (c DeliveryCode) IsZero() bool {
	return c == ""
}

// Matches compares the submitted code byte for byte in constant time. No trimming
// or normalization is applied.
func (c DeliveryCode) Matches(submitted string) bool {
	if c.IsZero() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c), []byte(submitted)) == 1
}

func (c DeliveryCode) String() string {
	return string(c)
}
