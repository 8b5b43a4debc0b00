package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

var (
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	ErrOrderIsNotPending   = errors.New("order is not pending assignment")
)

// AssignCourierCommandHandler orchestrates automatic courier assignment.
//
// Selection and claim happen in one transaction: the eligible courier rows are
// locked before workloads are counted, and the order is only written if it is
// still registered. Two orders created at the same time therefore cannot both
// pick a courier based on the same stale workload.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, notifier, logger)
//	courierID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Courier %s assigned", courierID)
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
	logger     *slog.Logger
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
func NewAssignCourierCommandHandler(uowFactory UoWFactory, notifier Notifier, logger *slog.Logger) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "assign_courier"),
	}
}

// Handle assigns the least-loaded eligible courier and returns its id.
// Returns ErrNoFreeCouriersFound without touching the order when nobody is
// eligible, and ErrOrderIsNotPending when the order already left registered.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if o.Status() != order.Registered {
		return kernel.UUID{}, fmt.Errorf("%w: %s", ErrOrderIsNotPending, o.Status())
	}

	couriers, err := courierRepo.GetAllEligibleForUpdate(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(couriers) == 0 {
		return kernel.UUID{}, ErrNoFreeCouriersFound
	}

	candidates, err := withWorkload(ctx, orderRepo, couriers)
	if err != nil {
		return kernel.UUID{}, err
	}

	chosen, err := services.NewOrderDispatcher().Dispatch(o, candidates)
	if errors.Is(err, services.ErrCourierNotFound) {
		return kernel.UUID{}, ErrNoFreeCouriersFound
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.UpdateIfStatus(ctx, o, order.Registered); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	appendHistory(ctx, h.logger, uow, o.ID(), order.Registered, order.Assigned, nil,
		"assigned to courier "+chosen.ID().String())
	h.notifier.OrderAssigned(ctx, o.ID(), chosen.ID())

	return chosen.ID(), nil
}

// withWorkload pairs couriers with their count of non-terminal orders.
func withWorkload(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	couriers []*courier.Courier,
) ([]services.Candidate, error) {
	ids := make([]kernel.UUID, 0, len(couriers))
	for _, c := range couriers {
		ids = append(ids, c.ID())
	}

	workloads, err := orderRepo.CountActiveByCourier(ctx, ids)
	if err != nil {
		return nil, err
	}

	candidates := make([]services.Candidate, 0, len(couriers))
	for _, c := range couriers {
		candidates = append(candidates, services.Candidate{Courier: c, Workload: workloads[c.ID()]})
	}
	return candidates, nil
}
