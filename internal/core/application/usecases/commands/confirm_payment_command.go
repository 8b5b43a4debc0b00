package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand redeems a payment token and marks its order paid.
type ConfirmPaymentCommand struct {
	token string
	actor kernel.Actor
	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a payment confirmation.
func NewConfirmPaymentCommand(token string, actor kernel.Actor) (ConfirmPaymentCommand, error) {
	token = strings.TrimSpace(token)
	var tokenErr error
	if token == "" {
		tokenErr = errs.NewValueIsRequiredError("token")
	}
	if err := errors.Join(tokenErr, actor.Validate()); err != nil {
		return ConfirmPaymentCommand{}, err
	}
	return ConfirmPaymentCommand{token: token, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) Token() string {
	return c.token
}

func (c ConfirmPaymentCommand) Actor() kernel.Actor {
	return c.actor
}
