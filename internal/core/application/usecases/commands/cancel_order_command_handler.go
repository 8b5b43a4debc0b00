package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels orders for their customer or an admin.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle cancels the order if it is not terminal yet.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	if !o.CanBeCancelledBy(actor) {
		return errs.NewForbiddenError(actor.String(), "cancel order "+o.ID().String())
	}

	previous := o.Status()
	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendHistory(ctx, h.logger, uow, o.ID(), previous, order.Cancelled, &actor, cmd.Note())
	h.notifier.OrderStatusChanged(ctx, o.ID(), order.Cancelled)

	return nil
}
