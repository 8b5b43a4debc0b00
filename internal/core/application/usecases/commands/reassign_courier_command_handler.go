package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// ReassignCourierCommandHandler applies an admin's manual courier choice.
// maxActiveOrders > 0 rejects targets already carrying that many active orders.
type ReassignCourierCommandHandler struct {
	uowFactory      UoWFactory
	notifier        Notifier
	logger          *slog.Logger
	maxActiveOrders int
}

// NewReassignCourierCommandHandler creates a handler for manual reassignment.
func NewReassignCourierCommandHandler(
	uowFactory UoWFactory,
	notifier Notifier,
	logger *slog.Logger,
	maxActiveOrders int,
) ReassignCourierCommandHandler {
	return ReassignCourierCommandHandler{
		uowFactory:      uowFactory,
		notifier:        notifier,
		logger:          logger.With("component", "reassign_courier"),
		maxActiveOrders: maxActiveOrders,
	}
}

// Handle reassigns the order to the courier chosen by an admin.
//
// Parameters:
//   - ctx: Request context
//   - cmd: Order ID, target courier ID and the acting admin
//
// Returns:
//   - *errs.ForbiddenError for non-admin actors
//   - courier.ErrCourierIsNotActive when the target is deactivated
//   - services.ErrCourierOverloaded when the target reached maxActiveOrders
//   - order.ErrStatusTransitionIsInvalid once pickup started
//
// Business rules:
//   - Availability of the target is ignored, an admin may load a busy courier
//   - The courier that lost the order is notified along with the new one
func (h ReassignCourierCommandHandler) Handle(ctx context.Context, cmd ReassignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() {
		return errs.NewForbiddenError(actor.String(), "reassign orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	previous := o.Status()
	previousCourier := o.Courier()

	target, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	workloads, err := orderRepo.CountActiveByCourier(ctx, []kernel.UUID{target.ID()})
	if err != nil {
		return err
	}

	candidate := services.Candidate{Courier: target, Workload: workloads[target.ID()]}
	if err = services.NewOrderDispatcher().Reassign(o, candidate, h.maxActiveOrders); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	appendHistory(ctx, h.logger, uow, o.ID(), previous, order.Assigned, &actor,
		"reassigned to courier "+target.ID().String())
	if previousCourier != nil && previousCourier.IsEqual(target.ID()) {
		previousCourier = nil
	}
	h.notifier.OrderReassigned(ctx, o.ID(), target.ID(), previousCourier)

	return nil
}
