package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetCourierAccountStatusCommandIsNotConstructed = errors.New(
	"SetCourierAccountStatusCommand must be created via NewSetCourierAccountStatusCommand constructor",
)

// SetCourierAccountStatusCommand lets an admin activate or deactivate a courier.
type SetCourierAccountStatusCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	status    courier.AccountStatus
	actor     kernel.Actor
	guard     guard.ConstructorGuard
}

// NewSetCourierAccountStatusCommand creates an account status change.
func NewSetCourierAccountStatusCommand(
	courierID kernel.UUID,
	status courier.AccountStatus,
	actor kernel.Actor,
) (SetCourierAccountStatusCommand, error) {
	if err := errors.Join(courierID.Validate(), status.Validate(), actor.Validate()); err != nil {
		return SetCourierAccountStatusCommand{}, err
	}
	return SetCourierAccountStatusCommand{
		courierID: courierID,
		status:    status,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierAccountStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAccountStatusCommandIsNotConstructed)
}

func (c SetCourierAccountStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c SetCourierAccountStatusCommand) Status() courier.AccountStatus {
	return c.status
}

func (c SetCourierAccountStatusCommand) Actor() kernel.Actor {
	return c.actor
}
