package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
)

// SetCourierAvailabilityCommand lets a courier go on or off duty.
type SetCourierAvailabilityCommand struct {
	actor     kernel.Actor
	available bool
	guard     guard.ConstructorGuard
}

// NewSetCourierAvailabilityCommand creates an availability toggle for the acting courier.
func NewSetCourierAvailabilityCommand(actor kernel.Actor, available bool) (SetCourierAvailabilityCommand, error) {
	if err := actor.Validate(); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}
	return SetCourierAvailabilityCommand{
		actor:     actor,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAvailabilityCommandIsNotConstructed)
}

func (c SetCourierAvailabilityCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SetCourierAvailabilityCommand) Available() bool {
	return c.available
}
