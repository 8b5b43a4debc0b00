package queries

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrValidatePromotionQueryIsNotConstructed = errors.New(
	"ValidatePromotionQuery must be created via NewValidatePromotionQuery constructor",
)

// ValidatePromotionQuery checks whether a code applies to an amount without
// consuming it.
type ValidatePromotionQuery struct {
	code   string
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

func NewValidatePromotionQuery(code string, amount decimal.Decimal) (ValidatePromotionQuery, error) {
	q := ValidatePromotionQuery{
		code:   promotion.NormalizeCode(code),
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}

	var errList []error
	if q.code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if amount.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount)))
	}
	if err := errors.Join(errList...); err != nil {
		return ValidatePromotionQuery{}, err
	}

	return q, nil
}

func (q ValidatePromotionQuery) Validate() error {
	return q.guard.Validate(ErrValidatePromotionQueryIsNotConstructed)
}

func (q ValidatePromotionQuery) Code() string {
	return q.code
}

// ValidatePromotionResponse reports the outcome. Reason is empty when Valid.
type ValidatePromotionResponse struct {
	Valid    bool
	Discount decimal.Decimal
	Reason   promotion.Reason
}
