package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand submits the delivery code relayed by the customer.
// The code is kept exactly as submitted.
type ConfirmDeliveryCommand struct {
	orderID kernel.UUID
	code    string
	actor   kernel.Actor
	guard   guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a delivery confirmation command.
func NewConfirmDeliveryCommand(orderID kernel.UUID, code string, actor kernel.Actor) (ConfirmDeliveryCommand, error) {
	var codeErr error
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("code")
	}

	if err := errors.Join(orderID.Validate(), codeErr, actor.Validate()); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		orderID: orderID,
		code:    code,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmDeliveryCommand) Code() string {
	return c.code
}

func (c ConfirmDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}
