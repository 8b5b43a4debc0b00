package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler lists history entries oldest first. Couriers get
// notes with the delivery code stripped.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p, err := authorizeRead(ctx, h.db, query.orderID, query.actor)
	if err != nil {
		return nil, err
	}
	redact := !p.canSeeDeliveryCode(query.actor)

	var rows []struct {
		FromStatus int
		ToStatus   int
		ActorID    *uuid.UUID
		Note       string
		CreatedAt  time.Time
	}
	if err = h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			COALESCE(note, '') AS note,
			created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.orderID.Bytes()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]HistoryEntryView, 0, len(rows))
	for _, row := range rows {
		actorID, err := optionalID(row.ActorID)
		if err != nil {
			return nil, err
		}
		note := row.Note
		if redact {
			note = order.RedactDeliveryCode(note)
		}
		entries = append(entries, HistoryEntryView{
			From:    order.Status(row.FromStatus),
			To:      order.Status(row.ToStatus),
			ActorID: actorID,
			Note:    note,
			At:      row.CreatedAt,
		})
	}

	return entries, nil
}
