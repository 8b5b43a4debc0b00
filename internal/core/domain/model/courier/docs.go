// Package courier provides the Courier aggregate: a delivery worker who can be
// assigned orders.
//
// The package includes:
//   - Courier: The aggregate root with account status, availability flag and last
//     known location
//   - AccountStatus: Whether the courier account is active or inactive
//
// Key business rules:
//   - Couriers must have a valid unique identifier and a name
//   - Only active and available couriers are eligible for automatic assignment
//   - Manual reassignment requires an active account; availability is not checked
package courier
