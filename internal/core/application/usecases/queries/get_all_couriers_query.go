package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAllCouriersQueryIsNotConstructed = errors.New(
	"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
)

// GetAllCouriersQuery lists every courier with its current workload. Admin only.
//
// Example:
//
//	query, _ := NewGetAllCouriersQuery(admin)
//	couriers, err := NewGetAllCouriersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve couriers: %w", err)
//	}
//
//	for _, c := range couriers {
//	    fmt.Printf("%s: %d active orders\n", c.Name, c.ActiveOrders)
//	}
type GetAllCouriersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetAllCouriersQuery(actor kernel.Actor) (GetAllCouriersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllCouriersQuery{}, err
	}
	return GetAllCouriersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

// GetAllCouriersQueryResponse is a courier row of the dispatch board.
// Location is nil until the courier reports a position.
type GetAllCouriersQueryResponse struct {
	ID            kernel.UUID
	Name          string
	AccountStatus courier.AccountStatus
	Available     bool
	Location      *kernel.Location
	ActiveOrders  int
}
