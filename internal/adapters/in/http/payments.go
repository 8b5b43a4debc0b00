package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ValidatePromotion handles POST /api/v1/promotions/validate. A rejected code
// is a 200 with valid=false and the reason.
func (s *Server) ValidatePromotion(c echo.Context) error {
	var req servers.ValidatePromotionJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	query, err := queries.NewValidatePromotionQuery(req.Code, req.Amount)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.ValidatePromotion.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, servers.ValidatePromotionResponse{
		Valid:    result.Valid,
		Discount: money(result.Discount),
		Reason:   optionalText(string(result.Reason)),
	})
}

// ConfirmPayment handles POST /api/v1/payments/confirm.
func (s *Server) ConfirmPayment(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req servers.ConfirmPaymentJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewConfirmPaymentCommand(req.Token, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	orderID, err := s.handlers.ConfirmPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, servers.ConfirmPaymentResponse{
		OrderId:       orderID.Bytes(),
		PaymentStatus: servers.PaymentStatusPaid,
	})
}
