// Package promotion provides the Promotion aggregate and the rules that decide
// whether a promo code applies to an order amount.
//
// Rejection reasons are evaluated in a fixed order: not found, inactive, not yet
// started, expired, usage limit reached, amount below minimum. Evaluation never
// mutates the usage counter; redemption is a separate persistence operation.
package promotion
