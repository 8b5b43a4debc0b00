// Package queries contains read operations. Handlers read with SQL directly and
// return read models shaped for the HTTP and realtime adapters.
package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// participants are the parties of an order that may read it.
type participants struct {
	orderID    kernel.UUID
	customerID kernel.UUID
	courierID  *kernel.UUID
}

func (p participants) visibleTo(actor kernel.Actor) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsCustomer():
		return p.customerID.IsEqual(actor.UserID())
	case actor.IsCourier():
		return p.courierID != nil && p.courierID.IsEqual(actor.UserID())
	}
	return false
}

// canSeeDeliveryCode is narrower than visibleTo: the courier must obtain the
// code from the customer.
func (p participants) canSeeDeliveryCode(actor kernel.Actor) bool {
	return actor.IsAdmin() || (actor.IsCustomer() && p.customerID.IsEqual(actor.UserID()))
}

func loadParticipants(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (participants, error) {
	var row struct {
		CustomerID uuid.UUID
		CourierID  *uuid.UUID
	}
	result := db.WithContext(ctx).Raw(`
		SELECT customer_id, courier_id
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Scan(&row)
	if result.Error != nil {
		return participants{}, result.Error
	}
	if result.RowsAffected == 0 {
		return participants{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
	if err != nil {
		return participants{}, err
	}
	courierID, err := optionalID(row.CourierID)
	if err != nil {
		return participants{}, err
	}

	return participants{orderID: orderID, customerID: customerID, courierID: courierID}, nil
}

func authorizeRead(ctx context.Context, db *gorm.DB, orderID kernel.UUID, actor kernel.Actor) (participants, error) {
	p, err := loadParticipants(ctx, db, orderID)
	if err != nil {
		return participants{}, err
	}
	if !p.visibleTo(actor) {
		return participants{}, errs.NewForbiddenError(actor.String(), "read order "+orderID.String())
	}
	return p, nil
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalLocation(lat, lon *float64) (*kernel.Location, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	loc, err := kernel.NewLocation(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
