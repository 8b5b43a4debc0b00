package services

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TariffConfig is the pricing configuration. It is supplied per call because it may
// change at runtime.
type TariffConfig struct {
	BaseFee   decimal.Decimal
	PerKmRate decimal.Decimal
	RadiusKm  float64
	// Origin is the merchant location fees are measured from. Nil disables distance pricing.
	Origin *kernel.Location
}

// Validate checks that amounts and radius are not negative.
func (c TariffConfig) Validate() error {
	var errList []error
	if c.BaseFee.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("base fee", fmt.Errorf("%s is negative", c.BaseFee)))
	}
	if c.PerKmRate.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("per km rate", fmt.Errorf("%s is negative", c.PerKmRate)))
	}
	if c.RadiusKm < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("radius", fmt.Errorf("%v is negative", c.RadiusKm)))
	}
	return errors.Join(errList...)
}

// TariffQuote is the result of a fee computation.
type TariffQuote struct {
	Fee        decimal.Decimal
	DistanceKm float64
	// Distance is false when the base fee was used without measuring.
	Distance bool
}

// TariffCalculator computes shipping fees. It has no state.
type TariffCalculator struct{}

// NewTariffCalculator creates a new TariffCalculator instance.
func NewTariffCalculator() TariffCalculator {
	return TariffCalculator{}
}

// ComputeFee returns the haversine distance between origin and destination and the
// fee for it.
//
// Parameters:
//   - origin: The merchant location
//   - destination: The delivery location
//   - cfg: The tariff in force for this call
//
// Returns:
//   - TariffQuote: Fee rounded to 2 decimals, with the measured distance
//   - error: kernel.ErrLocationIsNotConstructed for zero value locations
//
// Business rules:
//   - A destination inside the radius, or exactly on it, pays the base fee
//   - Beyond the radius every extra kilometre adds PerKmRate, fractions included
//
// Example:
//
//	// 11.12 km away, radius 3, base 5, rate 1.5
//	quote, _ := calc.ComputeFee(origin, dest, cfg)
//	// quote.Fee = 5 + 8.12 * 1.5 = 17.18
func (TariffCalculator) ComputeFee(origin, destination kernel.Location, cfg TariffConfig) (TariffQuote, error) {
	distance, err := origin.DistanceKm(destination)
	if err != nil {
		return TariffQuote{}, err
	}

	fee := cfg.BaseFee
	if distance > cfg.RadiusKm {
		excess := decimal.NewFromFloat(distance - cfg.RadiusKm)
		fee = fee.Add(excess.Mul(cfg.PerKmRate))
	}

	return TariffQuote{
		Fee:        fee.Round(2),
		DistanceKm: distance,
		Distance:   true,
	}, nil
}

// BaseQuote returns the base fee without distance math.
func (TariffCalculator) BaseQuote(cfg TariffConfig) TariffQuote {
	return TariffQuote{Fee: cfg.BaseFee.Round(2)}
}

// Quote uses the configured origin and an optional destination, falling back to the
// base fee when either is missing.
func (t TariffCalculator) Quote(destination *kernel.Location, cfg TariffConfig) (TariffQuote, error) {
	if destination == nil || cfg.Origin == nil {
		return t.BaseQuote(cfg), nil
	}
	return t.ComputeFee(*cfg.Origin, *destination, cfg)
}
