package ports

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
)

// ErrAddressNotResolved is returned when a geocoder has no result for an address.
var ErrAddressNotResolved = errors.New("address not resolved")

// Geocoder resolves a delivery address into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.Location, error)
}
