package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when an order is created without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrAmountsAreFrozen is returned when pricing is changed after the order left Registered.
	ErrAmountsAreFrozen = errors.New("order amounts can only change while the order is registered")
)

// Order is the aggregate root of the delivery lifecycle.
//
// Order follows these invariants:
//   - total = subtotal + shippingFee - discount and is never negative
//   - the discount never exceeds subtotal + shippingFee
//   - status and courier assignment are consistent (see Status.ValidateCanHaveCourier)
//   - a delivery code exists while the order is EnRouteToCustomer and is cleared on delivery
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	merchantID  *kernel.UUID
	items       []Item
	address     string
	destination *kernel.Location

	subtotal    decimal.Decimal
	shippingFee decimal.Decimal
	discount    decimal.Decimal
	total       decimal.Decimal
	promotionID *kernel.UUID
	promoCode   string

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	status       Status
	courierID    *kernel.UUID
	deliveryCode DeliveryCode
	deliveredAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOrder creates a Registered order with pending payment, no courier and the
// subtotal computed from the items. Shipping fee and discount start at zero.
//
// Example:
//
//	item, _ := order.NewItem(kernel.NewUUID(), "Ceviche", 2, decimal.RequireFromString("25.00"))
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, nil, []order.Item{item},
//	    "Av. Arequipa 123", &destination, order.PaymentCash)
func NewOrder(
	id, customerID kernel.UUID,
	merchantID *kernel.UUID,
	items []Item,
	address string,
	destination *kernel.Location,
	paymentMethod PaymentMethod,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Registered,
		paymentStatus: PaymentPending,
		shippingFee:   decimal.Zero,
		discount:      decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setMerchant(merchantID),
		o.setItems(items),
		o.setAddress(address),
		o.setDestination(destination),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.recalculate()
	return o, nil
}

// State is the persisted representation used to rehydrate an Order.
type State struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	MerchantID    *kernel.UUID
	Items         []Item
	Address       string
	Destination   *kernel.Location
	Subtotal      decimal.Decimal
	ShippingFee   decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PromotionID   *kernel.UUID
	PromoCode     string
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Status        Status
	CourierID     *kernel.UUID
	DeliveryCode  DeliveryCode
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RestoreOrder rebuilds an Order from storage. Stored amounts are trusted as they
// were computed at creation; structural consistency is still checked.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		subtotal:      s.Subtotal,
		shippingFee:   s.ShippingFee,
		discount:      s.Discount,
		total:         s.Total,
		promotionID:   s.PromotionID,
		promoCode:     s.PromoCode,
		paymentStatus: s.PaymentStatus,
		status:        s.Status,
		courierID:     s.CourierID,
		deliveryCode:  s.DeliveryCode,
		deliveredAt:   s.DeliveredAt,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomer(s.CustomerID),
		o.setMerchant(s.MerchantID),
		o.setItems(s.Items),
		o.setAddress(s.Address),
		o.setDestination(s.Destination),
		o.setPaymentMethod(s.PaymentMethod),
		s.PaymentStatus.Validate(),
		s.Status.Validate(),
		s.Status.ValidateCanHaveCourier(s.CourierID != nil),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) MerchantID() *kernel.UUID {
	return o.merchantID
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Address() string {
	return o.address
}

// Destination returns the delivery coordinates, nil when the customer gave none.
func (o *Order) Destination() *kernel.Location {
	return o.destination
}

func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

func (o *Order) ShippingFee() decimal.Decimal {
	return o.shippingFee
}

func (o *Order) Discount() decimal.Decimal {
	return o.discount
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) PromotionID() *kernel.UUID {
	return o.promotionID
}

func (o *Order) PromoCode() string {
	return o.promoCode
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

func (o *Order) DeliveryCode() DeliveryCode {
	return o.deliveryCode
}

func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ApplyShippingFee sets the fee of a Registered order and recomputes the total.
func (o *Order) ApplyShippingFee(fee decimal.Decimal) error {
	if o.status != Registered {
		return ErrAmountsAreFrozen
	}
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("shipping fee", fmt.Errorf("%s is negative", fee))
	}

	o.shippingFee = fee
	o.recalculate()
	return nil
}

// ApplyPromotion records the promotion and its discount. The discount is capped at
// subtotal + shipping fee so the total can never go negative.
func (o *Order) ApplyPromotion(promotionID kernel.UUID, code string, discount decimal.Decimal) error {
	if o.status != Registered {
		return ErrAmountsAreFrozen
	}
	if err := promotionID.Validate(); err != nil {
		return err
	}
	if discount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("discount", fmt.Errorf("%s is negative", discount))
	}

	if gross := o.subtotal.Add(o.shippingFee); discount.GreaterThan(gross) {
		discount = gross
	}

	o.promotionID = &promotionID
	o.promoCode = code
	o.discount = discount
	o.recalculate()
	return nil
}

// Assign binds the order to a courier. Registered and Assigned orders accept it;
// the latter is a reassignment.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.touch()
	return nil
}

// Advance moves the order one step forward on its courier-driven path. Entering
// EnRouteToCustomer generates a new delivery code, which is returned; for other
// targets the returned code is empty.
func (o *Order) Advance(target Status) (DeliveryCode, error) {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return "", err
	}

	var code DeliveryCode
	if newStatus == EnRouteToCustomer {
		code, err = NewDeliveryCode()
		if err != nil {
			return "", err
		}
		o.deliveryCode = code
	}

	o.status = newStatus
	o.touch()
	return code, nil
}

// ConfirmDelivery validates the submitted code and marks the order Delivered.
// The code is cleared so it cannot be validated twice.
func (o *Order) ConfirmDelivery(submitted string, at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if !o.deliveryCode.Matches(submitted) {
		return ErrInvalidDeliveryCode
	}

	at = at.UTC()
	o.status = newStatus
	o.deliveryCode = ""
	o.deliveredAt = &at
	o.updatedAt = at
	return nil
}

// Cancel withdraws a non-terminal order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkPaid moves the payment sub-status to paid. Cancelled orders cannot be paid.
func (o *Order) MarkPaid() error {
	if o.status == Cancelled {
		return ErrOrderIsFinal
	}
	if o.paymentStatus == PaymentPaid {
		return ErrPaymentAlreadyConfirmed
	}

	o.paymentStatus = PaymentPaid
	o.touch()
	return nil
}

// IsAssignedTo reports whether courierID is the assigned courier.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// CanBeOperatedBy reports whether the actor may drive deliveries: the assigned
// courier, or an admin.
func (o *Order) CanBeOperatedBy(actor kernel.Actor) bool {
	return actor.IsAdmin() || (actor.IsCourier() && o.IsAssignedTo(actor.UserID()))
}

// CanBeCancelledBy reports whether the actor may cancel: the owning customer, or an admin.
func (o *Order) CanBeCancelledBy(actor kernel.Actor) bool {
	return actor.IsAdmin() || (actor.IsCustomer() && o.customerID.IsEqual(actor.UserID()))
}

// CanBeViewedBy reports whether the actor is a participant of the order or an admin.
func (o *Order) CanBeViewedBy(actor kernel.Actor) bool {
	return o.CanBeCancelledBy(actor) || (actor.IsCourier() && o.IsAssignedTo(actor.UserID()))
}

func (o *Order) recalculate() {
	subtotal := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.subtotal = subtotal.Round(2)

	total := o.subtotal.Add(o.shippingFee).Sub(o.discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	o.total = total.Round(2)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setMerchant(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("merchant", err)
		}
	}
	o.merchantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setDestination(destination *kernel.Location) error {
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return err
		}
	}
	o.destination = destination
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
