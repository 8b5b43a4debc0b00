package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand triggers automatic assignment of the least-loaded eligible
// courier to a registered order.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	courierID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoFreeCouriersFound) {
//	    // order stays registered
//	}
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to orderID.
func NewAssignCourierCommand(orderID kernel.UUID) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setOrderID(orderID); err != nil {
		return AssignCourierCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the order awaiting assignment.
func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
