package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrIssuePaymentTokenCommandIsNotConstructed = errors.New(
	"IssuePaymentTokenCommand must be created via NewIssuePaymentTokenCommand constructor",
)

// IssuePaymentTokenCommand requests a one-time payment token for an order.
type IssuePaymentTokenCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	guard   guard.ConstructorGuard
}

// NewIssuePaymentTokenCommand creates a token request for orderID.
func NewIssuePaymentTokenCommand(orderID kernel.UUID, actor kernel.Actor) (IssuePaymentTokenCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return IssuePaymentTokenCommand{}, err
	}
	return IssuePaymentTokenCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c IssuePaymentTokenCommand) Validate() error {
	return c.guard.Validate(ErrIssuePaymentTokenCommandIsNotConstructed)
}

func (c IssuePaymentTokenCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c IssuePaymentTokenCommand) Actor() kernel.Actor {
	return c.actor
}
