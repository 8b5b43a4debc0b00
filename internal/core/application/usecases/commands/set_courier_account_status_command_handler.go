package commands

import (
	"context"

	"fooddelivery/internal/pkg/errs"
)

// SetCourierAccountStatusCommandHandler persists admin account status changes.
type SetCourierAccountStatusCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierAccountStatusCommandHandler creates a handler for account status changes.
func NewSetCourierAccountStatusCommandHandler(uowFactory CourierUoWFactory) SetCourierAccountStatusCommandHandler {
	return SetCourierAccountStatusCommandHandler{uowFactory: uowFactory}
}

// Handle changes the account status. Deactivated couriers also become unavailable.
func (h SetCourierAccountStatusCommandHandler) Handle(ctx context.Context, cmd SetCourierAccountStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() {
		return errs.NewForbiddenError(actor.String(), "change courier account status")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = c.SetAccountStatus(cmd.Status()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
