package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// Notifier fans lifecycle changes out to real-time observers. Implementations must
// not block and must swallow delivery failures.
type Notifier interface {
	OrderAssigned(ctx context.Context, orderID, courierID kernel.UUID)
	// OrderReassigned also tells previousCourierID, when set, that the order left it.
	OrderReassigned(ctx context.Context, orderID, courierID kernel.UUID, previousCourierID *kernel.UUID)
	OrderStatusChanged(ctx context.Context, orderID kernel.UUID, status order.Status)
}
