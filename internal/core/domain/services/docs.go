// Package services contains stateless domain services that coordinate aggregates:
//   - TariffCalculator: distance-based shipping fee
//   - OrderDispatcher: least-loaded courier selection and reassignment rules
package services
