package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler retrieves couriers with their active-order count.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle returns couriers sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.actor.IsAdmin() {
		return nil, errs.NewForbiddenError(query.actor.String(), "list couriers")
	}

	statuses := make([]int, 0, 4)
	for _, s := range order.ActiveStatuses() {
		statuses = append(statuses, int(s))
	}

	couriers := make([]GetAllCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.account_status,
			c.available,
			c.location_latitude,
			c.location_longitude,
			COUNT(o.id) AS active_orders
		FROM couriers c
		LEFT JOIN orders o ON o.courier_id = c.id AND o.status IN ?
		GROUP BY c.id
		ORDER BY c.name
	`, statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllCouriersQueryResponse
		var id uuid.UUID
		var status string
		var latitude, longitude *float64

		err = rows.Scan(
			&id,
			&response.Name,
			&status,
			&response.Available,
			&latitude,
			&longitude,
			&response.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = courierID
		response.AccountStatus = courier.AccountStatus(status)

		location, locErr := optionalLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		response.Location = location
		couriers = append(couriers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
