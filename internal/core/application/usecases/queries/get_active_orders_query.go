package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists non-terminal orders visible to actor: every order
// for an admin, the assigned ones for a courier, the own ones for a customer.
type GetActiveOrdersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery(actor kernel.Actor) (GetActiveOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}
	return GetActiveOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ActiveOrderView is the summary row shown on dispatch boards.
type ActiveOrderView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	CourierID  *kernel.UUID
	Status     order.Status
	Address    string
	Total      decimal.Decimal
	CreatedAt  time.Time
}
