// Package kernel provides core domain primitives shared by every aggregate of the
// food-delivery marketplace.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Location: A geographic point (latitude/longitude) with great-circle distance
//   - Actor and Role: The authenticated identity that performs an operation
//
// These primitives enforce domain invariants at construction time and are immutable,
// so they can be shared freely between goroutines.
package kernel
