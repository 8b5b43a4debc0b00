package fanout

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// OrderReader loads an order for authorization.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// SubscriptionPolicy decides who may subscribe to order and courier topics.
type SubscriptionPolicy struct {
	orders OrderReader
}

func NewSubscriptionPolicy(orders OrderReader) SubscriptionPolicy {
	return SubscriptionPolicy{orders: orders}
}

// AuthorizeOrder returns the order topic if actor is the order's customer, its
// assigned courier or an admin.
func (p SubscriptionPolicy) AuthorizeOrder(ctx context.Context, actor kernel.Actor, orderID kernel.UUID) (string, error) {
	o, err := p.orders.Get(ctx, orderID)
	if err != nil {
		return "", err
	}

	if !o.CanBeViewedBy(actor) {
		return "", errs.NewForbiddenError(actor.String(), "subscribe to order "+orderID.String())
	}
	return OrderTopic(orderID), nil
}

// AuthorizeCourier returns the courier topic if actor is that courier or an admin.
func (p SubscriptionPolicy) AuthorizeCourier(actor kernel.Actor, courierID kernel.UUID) (string, error) {
	if !actor.IsAdmin() && !(actor.IsCourier() && actor.UserID().IsEqual(courierID)) {
		return "", errs.NewForbiddenError(actor.String(), "subscribe to courier "+courierID.String())
	}
	return CourierTopic(courierID), nil
}
