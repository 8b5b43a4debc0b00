package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsFinal is returned when a transition is attempted on a delivered or cancelled order.
	ErrOrderIsFinal = errors.New("order is already in a final status")
	// ErrDeliveryAlreadyConfirmed is returned when delivery is confirmed for an already delivered order.
	ErrDeliveryAlreadyConfirmed = errors.New("delivery is already confirmed")
	// ErrStatusTransitionIsInvalid is returned for transitions the state machine does not allow.
	ErrStatusTransitionIsInvalid = errors.New("status transition is invalid")
)

// Status represents the delivery state of an order.
//
// State transitions:
//
//	Registered ──> Assigned ──> EnRouteToMerchant ──> EnRouteToCustomer ──> Delivered
//	     │          │  ▲               │                    │
//	     │          └──┘ (reassign)    │                    │
//	     └──────────┴──────────────────┴────────────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Registered is the initial status; the order waits for a courier.
	Registered
	// Assigned means a courier is bound to the order.
	Assigned
	// EnRouteToMerchant means the courier is travelling to pick the order up.
	EnRouteToMerchant
	// EnRouteToCustomer means the courier carries the order; a delivery code exists.
	EnRouteToCustomer
	// Delivered means the delivery code was confirmed.
	Delivered
	// Cancelled means the order was withdrawn before delivery.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Registered:        "registered",
		Assigned:          "assigned",
		EnRouteToMerchant: "en_route_to_merchant",
		EnRouteToCustomer: "en_route_to_customer",
		Delivered:         "delivered",
		Cancelled:         "cancelled",
	}
}

// ParseStatus maps the wire representation to a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the status counts towards a courier's workload.
func (s Status) IsActive() bool {
	return s != Unknown && !s.IsTerminal()
}

// ActiveStatuses lists the non-terminal statuses in lifecycle order.
func ActiveStatuses() []Status {
	return []Status{Registered, Assigned, EnRouteToMerchant, EnRouteToCustomer}
}

// ValidateAssign checks that a courier can be (re)assigned from the current status.
// Registered and Assigned accept assignment.
func (s Status) ValidateAssign() error {
	if s.IsTerminal() {
		return ErrOrderIsFinal
	}
	if s != Registered && s != Assigned {
		return fmt.Errorf("%w: cannot assign a courier to an order in %s status", ErrStatusTransitionIsInvalid, s)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between status and courier assignment.
//
// Business Rules:
//   - Registered orders must not have a courier
//   - Assigned, EnRouteToMerchant, EnRouteToCustomer and Delivered orders must have one
//   - Cancelled orders may or may not have one
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if s == Cancelled {
		return nil
	}

	if courier && s == Registered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !courier && s != Registered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}

// Assign transitions Registered or Assigned to Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}

	return Assigned, nil
}

// TransitionTo validates a courier-driven progress step. Only the next status in the
// sequence Assigned -> EnRouteToMerchant -> EnRouteToCustomer is accepted; delivery
// goes through Deliver and cancellation through Cancel.
func (s Status) TransitionTo(target Status) (Status, error) {
	if s.IsTerminal() {
		return Unknown, ErrOrderIsFinal
	}

	switch {
	case s == Assigned && target == EnRouteToMerchant,
		s == EnRouteToMerchant && target == EnRouteToCustomer:
		return target, nil
	default:
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionIsInvalid, s, target)
	}
}

// Deliver transitions EnRouteToCustomer to Delivered.
// Delivered yields ErrDeliveryAlreadyConfirmed so that a losing concurrent
// confirmation can be told apart from other terminal states.
func (s Status) Deliver() (Status, error) {
	switch s {
	case EnRouteToCustomer:
		return Delivered, nil
	case Delivered:
		return Unknown, ErrDeliveryAlreadyConfirmed
	case Cancelled:
		return Unknown, ErrOrderIsFinal
	default:
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionIsInvalid, s, Delivered)
	}
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return Unknown, ErrOrderIsFinal
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	return Cancelled, nil
}
