package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ConfirmPaymentCommandHandler moves the payment sub-status of an order to paid.
// Delivery status is not affected.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	tokens     ports.PaymentTokenStore
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory, tokens ports.PaymentTokenStore) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{uowFactory: uowFactory, tokens: tokens}
}

// Handle redeems the token and returns the paid order id. Only admins, acting for
// the payment provider, may confirm payments. The token is restored when the
// payment could not be committed, so the provider may retry with it.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (_ kernel.UUID, err error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() {
		return kernel.UUID{}, errs.NewForbiddenError(actor.String(), "confirm payments")
	}

	orderID, err := h.tokens.Redeem(cmd.Token())
	if err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		if err != nil {
			_ = h.tokens.Restore(cmd.Token())
		}
	}()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = o.MarkPaid(); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.UpdatePayment(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
