package promotion

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPromotionIsNotConstructed is returned when a Promotion was not created through
// NewPromotion or RestorePromotion.
var ErrPromotionIsNotConstructed = errors.New("Promotion must be created via NewPromotion constructor")

var hundred = decimal.NewFromInt(100)

// DiscountType selects how the promotion value is interpreted.
type DiscountType string

const (
	// Percentage applies value percent of the order amount.
	Percentage DiscountType = "percentage"
	// Fixed subtracts value as an absolute amount.
	Fixed DiscountType = "fixed"
)

// Validate checks the discount type value.
func (d DiscountType) Validate() error {
	if d != Percentage && d != Fixed {
		return errs.NewValueIsInvalidErrorWithCause("discount type", fmt.Errorf("%q is not a valid discount type", string(d)))
	}
	return nil
}

// NormalizeCode trims and upper-cases a promo code. Codes are stored normalized.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Promotion is a promo code with its applicability rules.
type Promotion struct {
	id             kernel.UUID
	code           string
	discountType   DiscountType
	value          decimal.Decimal
	startsAt       *time.Time
	endsAt         *time.Time
	usageLimit     *int
	usageCount     int
	minOrderAmount decimal.Decimal
	active         bool
	guard          guard.ConstructorGuard
}

// Params groups the attributes of a Promotion.
type Params struct {
	ID             kernel.UUID
	Code           string
	DiscountType   DiscountType
	Value          decimal.Decimal
	StartsAt       *time.Time
	EndsAt         *time.Time
	UsageLimit     *int
	UsageCount     int
	MinOrderAmount decimal.Decimal
	Active         bool
}

// NewPromotion validates and creates a promotion with a zero usage counter.
func NewPromotion(p Params) (*Promotion, error) {
	p.UsageCount = 0
	return RestorePromotion(p)
}

// RestorePromotion rebuilds a Promotion from storage.
func RestorePromotion(p Params) (*Promotion, error) {
	promo := &Promotion{
		id:         p.ID,
		startsAt:   p.StartsAt,
		endsAt:     p.EndsAt,
		usageCount: p.UsageCount,
		active:     p.Active,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.ID.Validate(),
		promo.setCode(p.Code),
		promo.setDiscount(p.DiscountType, p.Value),
		promo.setWindow(p.StartsAt, p.EndsAt),
		promo.setUsageLimit(p.UsageLimit),
		promo.setMinOrderAmount(p.MinOrderAmount),
	); err != nil {
		return nil, err
	}

	return promo, nil
}

// Validate ensures the Promotion instance was properly constructed.
func (p *Promotion) Validate() error {
	if p == nil {
		return ErrPromotionIsNotConstructed
	}
	return p.guard.Validate(ErrPromotionIsNotConstructed)
}

func (p *Promotion) ID() kernel.UUID {
	return p.id
}

func (p *Promotion) Code() string {
	return p.code
}

func (p *Promotion) DiscountType() DiscountType {
	return p.discountType
}

func (p *Promotion) Value() decimal.Decimal {
	return p.value
}

func (p *Promotion) StartsAt() *time.Time {
	return p.startsAt
}

func (p *Promotion) EndsAt() *time.Time {
	return p.endsAt
}

// UsageLimit returns the usage cap, nil when unlimited.
func (p *Promotion) UsageLimit() *int {
	return p.usageLimit
}

func (p *Promotion) UsageCount() int {
	return p.usageCount
}

func (p *Promotion) MinOrderAmount() decimal.Decimal {
	return p.minOrderAmount
}

func (p *Promotion) IsActive() bool {
	return p.active
}

// Evaluate checks the promotion against an order amount at time now and returns the
// discount. The discount is capped at amount and rounded to 2 decimals. A
// *RejectionError is returned for the first failing rule.
func (p *Promotion) Evaluate(amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	switch {
	case !p.active:
		return decimal.Zero, NewRejectionError(p.code, ReasonInactive)
	case p.startsAt != nil && now.Before(*p.startsAt):
		return decimal.Zero, NewRejectionError(p.code, ReasonNotStarted)
	case p.endsAt != nil && now.After(*p.endsAt):
		return decimal.Zero, NewRejectionError(p.code, ReasonExpired)
	case p.usageLimit != nil && p.usageCount >= *p.usageLimit:
		return decimal.Zero, NewRejectionError(p.code, ReasonUsageLimitReached)
	case amount.LessThan(p.minOrderAmount):
		return decimal.Zero, NewRejectionError(p.code, ReasonBelowMinimum)
	}

	var discount decimal.Decimal
	switch p.discountType {
	case Percentage:
		discount = amount.Mul(p.value).Div(hundred)
	case Fixed:
		discount = p.value
	}

	if discount.GreaterThan(amount) {
		discount = amount
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	return discount.Round(2), nil
}

func (p *Promotion) setCode(code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	p.code = code
	return nil
}

func (p *Promotion) setDiscount(discountType DiscountType, value decimal.Decimal) error {
	if err := discountType.Validate(); err != nil {
		return err
	}
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%s is not greater than 0", value))
	}
	if discountType == Percentage && value.GreaterThan(hundred) {
		return errs.NewValueIsOutOfRangeError("value", value, 0, 100)
	}
	p.discountType = discountType
	p.value = value
	return nil
}

func (p *Promotion) setWindow(startsAt, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && endsAt.Before(*startsAt) {
		return errs.NewValueIsInvalidErrorWithCause("validity window", errors.New("end is before start"))
	}
	p.startsAt = startsAt
	p.endsAt = endsAt
	return nil
}

func (p *Promotion) setUsageLimit(limit *int) error {
	if limit != nil && *limit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("usage limit", fmt.Errorf("%d is negative", *limit))
	}
	p.usageLimit = limit
	return nil
}

func (p *Promotion) setMinOrderAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("minimum order amount", fmt.Errorf("%s is negative", amount))
	}
	p.minOrderAmount = amount
	return nil
}
