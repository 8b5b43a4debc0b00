package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrReassignCourierCommandIsNotConstructed = errors.New(
	"ReassignCourierCommand must be created via NewReassignCourierCommand constructor",
)

// ReassignCourierCommand is an operator override that binds an order to a chosen
// courier, bypassing load balancing.
type ReassignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	actor     kernel.Actor
	guard     guard.ConstructorGuard
}

// NewReassignCourierCommand creates a reassignment command issued by actor.
func NewReassignCourierCommand(orderID, courierID kernel.UUID, actor kernel.Actor) (ReassignCourierCommand, error) {
	cmd := ReassignCourierCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		orderID.Validate(),
		courierID.Validate(),
		actor.Validate(),
	); err != nil {
		return ReassignCourierCommand{}, err
	}

	cmd.orderID = orderID
	cmd.courierID = courierID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignCourierCommand) Validate() error {
	return c.guard.Validate(ErrReassignCourierCommandIsNotConstructed)
}

func (c ReassignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReassignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c ReassignCourierCommand) Actor() kernel.Actor {
	return c.actor
}
