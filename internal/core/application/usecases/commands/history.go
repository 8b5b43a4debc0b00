package commands

import (
	"context"
	"log/slog"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// appendHistory writes an audit entry after the status change was committed. A
// failure is logged and never returned: the status change stands on its own.
func appendHistory(
	ctx context.Context,
	logger *slog.Logger,
	uow HistoryRepoFactory,
	orderID kernel.UUID,
	from, to order.Status,
	actor *kernel.Actor,
	note string,
) {
	var actorID *kernel.UUID
	if actor != nil {
		id := actor.UserID()
		actorID = &id
	}

	entry := order.NewHistoryEntry(orderID, from, to, actorID, note)
	if err := uow.HistoryRepository().Append(ctx, entry); err != nil {
		logger.WarnContext(ctx, "failed to append status history",
			"order_id", orderID.String(),
			"from", from.String(),
			"to", to.String(),
			"error", err,
		)
	}
}

func joinNote(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, order.NoteSeparator)
}
