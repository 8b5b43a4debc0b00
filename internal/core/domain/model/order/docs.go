// Package order provides the Order aggregate of the food-delivery marketplace and
// the state machine that governs its lifecycle.
//
// The package includes:
//   - Order: The aggregate root holding snapshotted line items, amounts, delivery
//     destination, payment sub-status, assigned courier and delivery code
//   - Status: The delivery status state machine
//   - Item: An immutable line item snapshotted at order time
//   - DeliveryCode: The one-time 6-digit code that confirms physical delivery
//   - HistoryEntry: An append-only audit record of a status change
//
// Key business rules:
//   - total = subtotal + shipping fee - discount, never negative
//   - registered -> assigned -> en_route_to_merchant -> en_route_to_customer -> delivered
//   - cancelled is reachable from any non-terminal status; delivered and cancelled are terminal
//   - a delivery code is generated on entering en_route_to_customer and validated at most once
//   - payment status (pending/paid) is independent from delivery status
package order
