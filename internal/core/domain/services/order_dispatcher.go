package services

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
)

var (
	// ErrCourierNotFound is returned when no eligible courier is available for dispatch.
	ErrCourierNotFound = errors.New("courier not found")
	// ErrCourierOverloaded is returned when a reassignment target already carries the
	// maximum number of active orders.
	ErrCourierOverloaded = errors.New("courier has too many active orders")
)

// Candidate is a courier together with its current workload: the number of its
// orders that are neither delivered nor cancelled.
type Candidate struct {
	Courier  *courier.Courier
	Workload int
}

// OrderDispatcher is a domain service responsible for selecting the courier for an
// order and applying the assignment to the aggregate.
//
// Business rules:
//   - Orders must be valid and assignable before dispatch
//   - Only active, available couriers are considered
//   - The courier with the minimum workload wins; the first one encountered on ties
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	chosen, err := dispatcher.Dispatch(o, candidates)
//	if errors.Is(err, services.ErrCourierNotFound) {
//	    // order stays registered
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch picks the least-loaded eligible candidate and assigns the order to it.
//
// Parameters:
//   - o: The order to dispatch, registered or already assigned
//   - candidates: Couriers with their active order counts
//
// Returns:
//   - *courier.Courier: The chosen courier
//   - error: ErrCourierNotFound when nobody is eligible, order.ErrOrderIsFinal
//     or a transition error when the order cannot take a courier
//
// The order is not modified when no courier is found.
func (d OrderDispatcher) Dispatch(o *order.Order, candidates []Candidate) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	best, err := d.findLeastLoaded(candidates)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// Reassign binds the order to an operator-chosen courier, bypassing load balancing.
//
// Parameters:
//   - o: The order, registered or assigned
//   - target: The chosen courier and its workload
//   - maxActive: Workload cap, 0 disables it
//
// Business rules:
//   - The target must be active; availability is not required
//   - maxActive > 0 rejects a target whose workload already reached it, unless
//     the order is already assigned to that target
func (d OrderDispatcher) Reassign(o *order.Order, target Candidate, maxActive int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Courier.Validate(); err != nil {
		return err
	}
	if err := target.Courier.EnsureActive(); err != nil {
		return err
	}
	if maxActive > 0 && target.Workload >= maxActive && !o.IsAssignedTo(target.Courier.ID()) {
		return fmt.Errorf("%w: %d of %d", ErrCourierOverloaded, target.Workload, maxActive)
	}

	return o.Assign(target.Courier.ID())
}

func (d OrderDispatcher) findLeastLoaded(candidates []Candidate) (*courier.Courier, error) {
	var (
		best         *courier.Courier
		bestWorkload int
	)

	for _, c := range candidates {
		if err := c.Courier.Validate(); err != nil {
			return nil, err
		}

		if !c.Courier.IsEligibleForAssignment() {
			continue
		}

		if best == nil || c.Workload < bestWorkload {
			best = c.Courier
			bestWorkload = c.Workload
		}
	}

	if best == nil {
		return nil, ErrCourierNotFound
	}

	return best, nil
}
