package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler validates delivery codes and completes orders.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	logger     *slog.Logger
	now        func() time.Time
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	logger *slog.Logger,
	now func() time.Time,
) ConfirmDeliveryCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "confirm_delivery"),
		now:        now,
	}
}

// Handle confirms delivery with the code the customer relayed to the courier.
//
// Parameters:
//   - ctx: Request context
//   - cmd: Order ID, submitted code and the acting courier or admin
//
// Returns:
//   - order.ErrInvalidDeliveryCode when the code does not match
//   - order.ErrDeliveryAlreadyConfirmed or order.ErrOrderIsFinal when the order
//     already left en_route_to_customer
//   - *errs.ForbiddenError when the actor is not the assigned courier or an admin
//
// Business rules:
//   - The write is conditional on en_route_to_customer, so of two concurrent
//     confirmations exactly one succeeds
//   - The loser re-reads the order and reports the status that beat it
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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
	if !o.CanBeOperatedBy(actor) {
		return errs.NewForbiddenError(actor.String(), "confirm delivery of order "+o.ID().String())
	}

	if err = o.ConfirmDelivery(cmd.Code(), h.now()); err != nil {
		return err
	}

	err = orderRepo.UpdateIfStatus(ctx, o, order.EnRouteToCustomer)
	if errors.Is(err, errs.ErrConcurrentUpdate) {
		return lostConfirmation(ctx, orderRepo, o, err)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendHistory(ctx, h.logger, uow, o.ID(), order.EnRouteToCustomer, order.Delivered, &actor, "delivery confirmed")
	h.notifier.OrderStatusChanged(ctx, o.ID(), order.Delivered)

	return nil
}

// lostConfirmation maps a lost conditional write to the status that won it.
func lostConfirmation(ctx context.Context, orderRepo ports.OrderRepository, o *order.Order, conflict error) error {
	current, err := orderRepo.Get(ctx, o.ID())
	if err != nil {
		return err
	}
	switch current.Status() {
	case order.Delivered:
		return order.ErrDeliveryAlreadyConfirmed
	case order.Cancelled:
		return order.ErrOrderIsFinal
	}
	return conflict
}
