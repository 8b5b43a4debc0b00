package courier

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsNotActive is returned when an operation requires an active account.
	ErrCourierIsNotActive = errors.New("courier account is not active")
)

// Courier represents a delivery worker.
//
// Key characteristics:
//   - Has a unique identifier and name
//   - Has an account status managed by admins
//   - Has an availability flag the courier toggles while working
//   - Optionally reports a last known location
type Courier struct {
	id            kernel.UUID
	name          string
	accountStatus AccountStatus
	available     bool
	location      *kernel.Location
	guard         guard.ConstructorGuard
}

// NewCourier creates an active courier that is not yet available for work.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Rosa")
//	if err != nil {
//	    return err
//	}
//	c.SetAvailability(true)
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	c := &Courier{
		accountStatus: AccountActive,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	name string,
	accountStatus AccountStatus,
	available bool,
	location *kernel.Location,
) (*Courier, error) {
	c := &Courier{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setAccountStatus(accountStatus),
		c.setLocation(location),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) AccountStatus() AccountStatus {
	return c.accountStatus
}

func (c *Courier) IsAvailable() bool {
	return c.available
}

// Location returns the last reported location, nil if never reported.
func (c *Courier) Location() *kernel.Location {
	return c.location
}

// IsActive reports whether the account is active.
func (c *Courier) IsActive() bool {
	return c.accountStatus == AccountActive
}

// IsEligibleForAssignment reports whether automatic assignment may pick this courier.
func (c *Courier) IsEligibleForAssignment() bool {
	return c.IsActive() && c.available
}

// EnsureActive returns ErrCourierIsNotActive unless the account is active.
func (c *Courier) EnsureActive() error {
	if !c.IsActive() {
		return ErrCourierIsNotActive
	}
	return nil
}

// SetAvailability toggles the availability flag. A courier whose account is not
// active cannot become available.
func (c *Courier) SetAvailability(available bool) error {
	if available && !c.IsActive() {
		return ErrCourierIsNotActive
	}
	c.available = available
	return nil
}

// SetAccountStatus changes the account status. Leaving the active status also
// clears availability.
func (c *Courier) SetAccountStatus(status AccountStatus) error {
	if err := c.setAccountStatus(status); err != nil {
		return err
	}
	if status != AccountActive {
		c.available = false
	}
	return nil
}

// ReportLocation stores the courier's last known location.
func (c *Courier) ReportLocation(location kernel.Location) error {
	return c.setLocation(&location)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setAccountStatus(status AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.accountStatus = status
	return nil
}

func (c *Courier) setLocation(location *kernel.Location) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	c.location = location
	return nil
}
