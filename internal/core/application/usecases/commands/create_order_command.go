package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	ErrItemsAreRequired  = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand represents a customer checkout: line items snapshotted at
// order time, a delivery address with optional coordinates, a payment method and
// an optional promo code.
//
// Example:
//
//	item, _ := order.NewItem(productID, "Ceviche", 2, decimal.RequireFromString("25.00"))
//	cmd, err := NewCreateOrderCommand(actor, actor.UserID(), nil, []order.Item{item},
//	    "Av. Arequipa 123", order.PaymentCash, &destination, "verano10")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	customerID    kernel.UUID
	merchantID    *kernel.UUID
	items         []order.Item
	address       string
	paymentMethod order.PaymentMethod
	destination   *kernel.Location
	promoCode     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates a checkout request.
func NewCreateOrderCommand(
	actor kernel.Actor,
	customerID kernel.UUID,
	merchantID *kernel.UUID,
	items []order.Item,
	address string,
	paymentMethod order.PaymentMethod,
	destination *kernel.Location,
	promoCode string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor:       actor,
		customerID:  customerID,
		merchantID:  merchantID,
		destination: destination,
		promoCode:   promotion.NormalizeCode(promoCode),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		customerID.Validate(),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) MerchantID() *kernel.UUID {
	return c.merchantID
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Destination returns the delivery coordinates, nil when the customer gave none.
func (c CreateOrderCommand) Destination() *kernel.Location {
	return c.destination
}

// PromoCode returns the normalized promo code, empty when none was given.
func (c CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	parsed, err := order.ParsePaymentMethod(string(method))
	if err != nil {
		return err
	}
	c.paymentMethod = parsed
	return nil
}
