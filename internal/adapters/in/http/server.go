// Package http exposes the order lifecycle over a JSON REST API.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Use case ports. The command and query handlers satisfy them as they are.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (commands.UpdateOrderStatusResult, error)
	}
	ConfirmDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmDeliveryCommand) error
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	ReassignCourierHandler interface {
		Handle(ctx context.Context, cmd commands.ReassignCourierCommand) error
	}
	SetCourierAvailabilityHandler interface {
		Handle(ctx context.Context, cmd commands.SetCourierAvailabilityCommand) error
	}
	SetCourierAccountStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetCourierAccountStatusCommand) error
	}
	IssuePaymentTokenHandler interface {
		Handle(ctx context.Context, cmd commands.IssuePaymentTokenCommand) (commands.PaymentToken, error)
	}
	ConfirmPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (kernel.UUID, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	GetOrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.HistoryEntryView, error)
	}
	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.ActiveOrderView, error)
	}
	GetAllCouriersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCouriersQuery) ([]queries.GetAllCouriersQueryResponse, error)
	}
	ValidatePromotionHandler interface {
		Handle(ctx context.Context, query queries.ValidatePromotionQuery) (queries.ValidatePromotionResponse, error)
	}
	PricingStore interface {
		Current(ctx context.Context) (services.TariffConfig, error)
		Save(ctx context.Context, cfg services.TariffConfig) error
	}
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateOrder             CreateOrderHandler
	UpdateOrderStatus       UpdateOrderStatusHandler
	ConfirmDelivery         ConfirmDeliveryHandler
	CancelOrder             CancelOrderHandler
	ReassignCourier         ReassignCourierHandler
	SetCourierAvailability  SetCourierAvailabilityHandler
	SetCourierAccountStatus SetCourierAccountStatusHandler
	IssuePaymentToken       IssuePaymentTokenHandler
	ConfirmPayment          ConfirmPaymentHandler

	GetOrder          GetOrderHandler
	GetOrderHistory   GetOrderHistoryHandler
	GetActiveOrders   GetActiveOrdersHandler
	GetAllCouriers    GetAllCouriersHandler
	ValidatePromotion ValidatePromotionHandler

	Pricing PricingStore
}

const apiBasePath = "/api/v1"

var _ servers.ServerInterface = (*Server)(nil)

// Server adapts HTTP requests to commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the generated API under /api/v1. Every route requires
// a bearer token and is checked against the OpenAPI document before its
// handler runs.
func (s *Server) RegisterRoutes(e *echo.Echo, verifier TokenVerifier) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi document: %w", err)
	}

	api := e.Group(apiBasePath, AuthJWT(verifier), OpenAPIValidator(swagger, apiBasePath))
	servers.RegisterHandlers(api, s)
	e.HTTPErrorHandler = s.handleHTTPError
	return nil
}

// Health handles GET /health.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, newErrorResponse(CodeUnauthorized, "unauthorized"))
}
