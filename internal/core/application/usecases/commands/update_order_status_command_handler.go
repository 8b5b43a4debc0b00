package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusResult reports the new status and, when the order entered
// en_route_to_customer, the generated delivery code.
type UpdateOrderStatusResult struct {
	Status       order.Status
	DeliveryCode order.DeliveryCode
}

// UpdateOrderStatusCommandHandler applies courier progress updates.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status"),
	}
}

// Handle advances the order one step on the courier path.
//
// Returns:
//   - UpdateOrderStatusResult: The new status, plus the delivery code when it
//     became en_route_to_customer
//   - error: order.ErrStatusTransitionIsInvalid for skipped or backward steps,
//     errs.ErrConcurrentUpdate when another writer moved the order first
//
// The write only lands if the stored status is still the one the transition
// was computed from.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	actor := cmd.Actor()
	if !o.CanBeOperatedBy(actor) {
		return UpdateOrderStatusResult{}, errs.NewForbiddenError(actor.String(), "update order "+o.ID().String())
	}

	previous := o.Status()
	code, err := o.Advance(cmd.Target())
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, previous); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	note := cmd.Note()
	if !code.IsZero() {
		note = joinNote(note, order.DeliveryCodeNote(code))
	}
	appendHistory(ctx, h.logger, uow, o.ID(), previous, o.Status(), &actor, note)
	h.notifier.OrderStatusChanged(ctx, o.ID(), o.Status())

	return UpdateOrderStatusResult{Status: o.Status(), DeliveryCode: code}, nil
}
