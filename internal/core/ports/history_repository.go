package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// HistoryRepository stores the append-only status audit trail.
type HistoryRepository interface {
	// Append adds one entry.
	Append(ctx context.Context, entry order.HistoryEntry) error

	// ListByOrder returns the entries of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}
