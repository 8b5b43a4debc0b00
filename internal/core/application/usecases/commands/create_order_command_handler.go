package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Assignment messages returned with a created order.
const (
	AssignmentMessageAssigned  = "courier assigned"
	AssignmentMessageNoCourier = "no courier available, the order is pending assignment"
	AssignmentMessagePending   = "courier assignment is pending"
)

// CourierAssigner runs automatic assignment for one order.
type CourierAssigner interface {
	Handle(ctx context.Context, cmd AssignCourierCommand) (kernel.UUID, error)
}

// CreateOrderResult is what the customer receives after checkout.
type CreateOrderResult struct {
	ID                kernel.UUID
	Status            order.Status
	CourierID         *kernel.UUID
	AssignmentMessage string
	Subtotal          decimal.Decimal
	ShippingFee       decimal.Decimal
	Discount          decimal.Decimal
	Total             decimal.Decimal
	DistanceKm        *float64
}

// CreateOrderOptions bounds the external calls made during checkout.
type CreateOrderOptions struct {
	GeocodeTimeout time.Duration
	AssignTimeout  time.Duration
	// Now is the clock promotions are evaluated against; time.Now when nil.
	Now func() time.Time
}

// CreateOrderCommandHandler handles customer checkout.
//
// Flow: resolve coordinates (geocoder, optional) → shipping fee → promotion
// discount (optional) → persist order and redemption in one transaction →
// history → assignment attempt. The assignment attempt runs after the order is
// committed under its own timeout; when it fails the order simply stays
// registered for the retry job or an admin.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricing    ports.PricingProvider
	geocoder   ports.Geocoder
	assigner   CourierAssigner
	tariff     services.TariffCalculator
	logger     *slog.Logger
	options    CreateOrderOptions
}

// NewCreateOrderCommandHandler creates a handler for order creation. geocoder may
// be nil, in which case orders without coordinates are charged the base fee.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	pricing ports.PricingProvider,
	geocoder ports.Geocoder,
	assigner CourierAssigner,
	logger *slog.Logger,
	options CreateOrderOptions,
) CreateOrderCommandHandler {
	if options.GeocodeTimeout <= 0 {
		options.GeocodeTimeout = 2 * time.Second
	}
	if options.AssignTimeout <= 0 {
		options.AssignTimeout = 3 * time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		geocoder:   geocoder,
		assigner:   assigner,
		tariff:     services.NewTariffCalculator(),
		logger:     logger.With("component", "create_order"),
		options:    options,
	}
}

// Handle prices and persists a new order, then attempts courier assignment.
//
// Parameters:
//   - ctx: Request context
//   - cmd: Items, address, optional coordinates and promo code, and the actor
//
// Returns:
//   - CreateOrderResult: Amounts, status and the assignment outcome
//   - error: *errs.ForbiddenError when a customer orders for somebody else,
//     *promotion.RejectionError when the promo code does not apply
//
// Business rules:
//   - Without coordinates the address is geocoded; any failure falls back to the base fee
//   - The discount is computed on subtotal plus shipping and never exceeds it
//   - Order insert and promotion redemption share one transaction
//   - Assignment runs after commit; its failure leaves the order registered
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() && !(actor.IsCustomer() && actor.UserID().IsEqual(cmd.CustomerID())) {
		return CreateOrderResult{}, errs.NewForbiddenError(actor.String(), "create orders for "+cmd.CustomerID().String())
	}

	destination := h.resolveDestination(ctx, cmd)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.MerchantID(),
		cmd.Items(),
		cmd.Address(),
		destination,
		cmd.PaymentMethod(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	quote, err := h.quote(ctx, destination)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = o.ApplyShippingFee(quote.Fee); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var promo *promotion.Promotion
	if code := cmd.PromoCode(); code != "" {
		promo, err = h.applyPromotion(ctx, uow.PromotionRepository(), o, code)
		if err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if promo != nil {
		if err = uow.PromotionRepository().IncrementUsage(ctx, promo.ID(), o.ID()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	appendHistory(ctx, h.logger, uow, o.ID(), order.Unknown, order.Registered, &actor, "order created")

	result := CreateOrderResult{
		ID:          o.ID(),
		Status:      o.Status(),
		Subtotal:    o.Subtotal(),
		ShippingFee: o.ShippingFee(),
		Discount:    o.Discount(),
		Total:       o.Total(),
	}
	if quote.Distance {
		distance := quote.DistanceKm
		result.DistanceKm = &distance
	}

	h.assign(ctx, &result)
	return result, nil
}

func (h CreateOrderCommandHandler) resolveDestination(ctx context.Context, cmd CreateOrderCommand) *kernel.Location {
	if cmd.Destination() != nil || h.geocoder == nil {
		return cmd.Destination()
	}

	gctx, cancel := context.WithTimeout(ctx, h.options.GeocodeTimeout)
	defer cancel()

	location, err := h.geocoder.Geocode(gctx, cmd.Address())
	if err != nil {
		h.logger.InfoContext(ctx, "address not geocoded, using base fee", "error", err)
		return nil
	}
	return &location
}

func (h CreateOrderCommandHandler) quote(ctx context.Context, destination *kernel.Location) (services.TariffQuote, error) {
	cfg, err := h.pricing.Current(ctx)
	if err != nil {
		return services.TariffQuote{}, err
	}

	quote, err := h.tariff.Quote(destination, cfg)
	if err != nil {
		h.logger.WarnContext(ctx, "distance pricing failed, using base fee", "error", err)
		return h.tariff.BaseQuote(cfg), nil
	}
	return quote, nil
}

func (h CreateOrderCommandHandler) applyPromotion(
	ctx context.Context,
	repo ports.PromotionRepository,
	o *order.Order,
	code string,
) (*promotion.Promotion, error) {
	promo, err := repo.GetByCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, promotion.NewRejectionError(code, promotion.ReasonNotFound)
	}
	if err != nil {
		return nil, err
	}

	discount, err := promo.Evaluate(o.Subtotal().Add(o.ShippingFee()), h.options.Now())
	if err != nil {
		return nil, err
	}

	if err = o.ApplyPromotion(promo.ID(), promo.Code(), discount); err != nil {
		return nil, err
	}
	return promo, nil
}

func (h CreateOrderCommandHandler) assign(ctx context.Context, result *CreateOrderResult) {
	cmd, err := NewAssignCourierCommand(result.ID)
	if err != nil {
		result.AssignmentMessage = AssignmentMessagePending
		return
	}

	actx, cancel := context.WithTimeout(ctx, h.options.AssignTimeout)
	defer cancel()

	courierID, err := h.assigner.Handle(actx, cmd)
	switch {
	case err == nil:
		result.Status = order.Assigned
		result.CourierID = &courierID
		result.AssignmentMessage = AssignmentMessageAssigned
	case errors.Is(err, ErrNoFreeCouriersFound):
		result.AssignmentMessage = AssignmentMessageNoCourier
	default:
		h.logger.WarnContext(ctx, "courier assignment failed", "order_id", result.ID.String(), "error", err)
		result.AssignmentMessage = AssignmentMessagePending
	}
}
