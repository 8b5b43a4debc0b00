package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// PaymentToken is an issued one-time token.
type PaymentToken struct {
	Token     string
	ExpiresAt time.Time
}

// IssuePaymentTokenCommandHandler issues payment tokens to the order's customer.
type IssuePaymentTokenCommandHandler struct {
	uowFactory OrderUoWFactory
	tokens     ports.PaymentTokenStore
}

// NewIssuePaymentTokenCommandHandler creates a handler for token issuing.
func NewIssuePaymentTokenCommandHandler(uowFactory OrderUoWFactory, tokens ports.PaymentTokenStore) IssuePaymentTokenCommandHandler {
	return IssuePaymentTokenCommandHandler{uowFactory: uowFactory, tokens: tokens}
}

// Handle issues a token for a pending-payment order that is not cancelled.
func (h IssuePaymentTokenCommandHandler) Handle(ctx context.Context, cmd IssuePaymentTokenCommand) (PaymentToken, error) {
	if err := cmd.Validate(); err != nil {
		return PaymentToken{}, err
	}

	// Read only: no transaction needed.
	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return PaymentToken{}, err
	}

	actor := cmd.Actor()
	if !o.CanBeCancelledBy(actor) {
		return PaymentToken{}, errs.NewForbiddenError(actor.String(), "pay order "+o.ID().String())
	}
	if o.Status() == order.Cancelled {
		return PaymentToken{}, order.ErrOrderIsFinal
	}
	if o.PaymentStatus() == order.PaymentPaid {
		return PaymentToken{}, order.ErrPaymentAlreadyConfirmed
	}

	token, expiresAt, err := h.tokens.Issue(o.ID())
	if err != nil {
		return PaymentToken{}, err
	}
	return PaymentToken{Token: token, ExpiresAt: expiresAt}, nil
}
