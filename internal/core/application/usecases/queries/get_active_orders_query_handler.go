package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists active orders, oldest first.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]ActiveOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]int, 0, 4)
	for _, s := range order.ActiveStatuses() {
		statuses = append(statuses, int(s))
	}

	sql := `
		SELECT
			id,
			customer_id,
			courier_id,
			status,
			address,
			total,
			created_at
		FROM orders
		WHERE status IN ?`
	args := []any{statuses}

	actor := query.actor
	switch {
	case actor.IsCourier():
		sql += ` AND courier_id = ?`
		args = append(args, actor.UserID().Bytes())
	case actor.IsCustomer():
		sql += ` AND customer_id = ?`
		args = append(args, actor.UserID().Bytes())
	}
	sql += ` ORDER BY created_at`

	var rows []struct {
		ID         uuid.UUID
		CustomerID uuid.UUID
		CourierID  *uuid.UUID
		Status     int
		Address    string
		Total      decimal.Decimal
		CreatedAt  time.Time
	}
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]ActiveOrderView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
		if err != nil {
			return nil, err
		}
		courierID, err := optionalID(row.CourierID)
		if err != nil {
			return nil, err
		}
		views = append(views, ActiveOrderView{
			ID:         id,
			CustomerID: customerID,
			CourierID:  courierID,
			Status:     order.Status(row.Status),
			Address:    row.Address,
			Total:      row.Total,
			CreatedAt:  row.CreatedAt,
		})
	}

	return views, nil
}
