// Package paymenttoken keeps one-time payment tokens in memory.
package paymenttoken

import (
	"crypto/rand"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

// DefaultTTL is how long an issued token stays redeemable.
const DefaultTTL = 15 * time.Minute

var _ ports.PaymentTokenStore = (*MemoryStore)(nil)

type entry struct {
	orderID   kernel.UUID
	expiresAt time.Time
}

// MemoryStore is safe for concurrent use. Tokens do not survive a restart.
// Redeemed tokens are kept until expiry so a failed confirmation can restore them.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	tokens   map[string]entry
	redeemed map[string]entry
}

// NewMemoryStore creates a store. A non-positive ttl selects DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		tokens:   make(map[string]entry),
		redeemed: make(map[string]entry),
	}
}

func (s *MemoryStore) Issue(orderID kernel.UUID) (string, time.Time, error) {
	if err := orderID.Validate(); err != nil {
		return "", time.Time{}, err
	}

	token := rand.Text()

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.now().Add(s.ttl)
	s.tokens[token] = entry{orderID: orderID, expiresAt: expiresAt}
	return token, expiresAt, nil
}

func (s *MemoryStore) Redeem(token string) (kernel.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.tokens[token]
	if !ok {
		return kernel.UUID{}, ports.ErrPaymentTokenInvalid
	}
	delete(s.tokens, token)

	if !s.now().Before(e.expiresAt) {
		return kernel.UUID{}, ports.ErrPaymentTokenInvalid
	}
	s.redeemed[token] = e
	return e.orderID, nil
}

func (s *MemoryStore) Restore(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.redeemed[token]
	if !ok {
		return ports.ErrPaymentTokenInvalid
	}
	delete(s.redeemed, token)

	if !s.now().Before(e.expiresAt) {
		return ports.ErrPaymentTokenInvalid
	}
	s.tokens[token] = e
	return nil
}

// Sweep drops expired tokens and returns how many unredeemed ones were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, e := range s.tokens {
		if !now.Before(e.expiresAt) {
			delete(s.tokens, token)
			removed++
		}
	}
	for token, e := range s.redeemed {
		if !now.Before(e.expiresAt) {
			delete(s.redeemed, token)
		}
	}
	return removed
}

// Len reports the number of stored tokens, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
