package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes returned in servers.Error.Code.
const (
	CodeValidation               = "VALIDATION_ERROR"
	CodeUnauthorized             = "UNAUTHORIZED"
	CodeNotFound                 = "NOT_FOUND"
	CodeInvalidCode              = "INVALID_CODE"
	CodeAlreadyFinal             = "ALREADY_FINAL"
	CodeDeliveryAlreadyConfirmed = "DELIVERY_ALREADY_CONFIRMED"
	CodePromoRejected            = "PROMO_REJECTED"
	CodeCourierOverloaded        = "COURIER_OVERLOADED"
	CodeConflict                 = "CONFLICT"
	CodeInternal                 = "INTERNAL_ERROR"
)

func newErrorResponse(code, message string) servers.Error {
	return servers.Error{Code: code, Message: message}
}

// classify maps an application error to a status and body. Order matters:
// domain sentinels are checked before the generic errs taxonomy they may wrap.
func classify(err error) (int, servers.Error) {
	var rejection *promotion.RejectionError

	switch {
	case errors.As(err, &rejection):
		return http.StatusUnprocessableEntity, servers.Error{
			Code:    CodePromoRejected,
			Message: err.Error(),
			Reason:  optionalText(string(rejection.Reason)),
		}
	case errors.Is(err, order.ErrInvalidDeliveryCode):
		return http.StatusUnprocessableEntity, newErrorResponse(CodeInvalidCode, "delivery code does not match")
	case errors.Is(err, order.ErrDeliveryAlreadyConfirmed):
		return http.StatusConflict, newErrorResponse(CodeDeliveryAlreadyConfirmed, err.Error())
	case errors.Is(err, order.ErrOrderIsFinal), errors.Is(err, order.ErrPaymentAlreadyConfirmed):
		return http.StatusConflict, newErrorResponse(CodeAlreadyFinal, err.Error())
	case errors.Is(err, services.ErrCourierOverloaded):
		return http.StatusConflict, newErrorResponse(CodeCourierOverloaded, err.Error())
	case errors.Is(err, errs.ErrConcurrentUpdate):
		return http.StatusConflict, newErrorResponse(CodeConflict, "the order changed, retry")
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, newErrorResponse(CodeUnauthorized, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, newErrorResponse(CodeNotFound, err.Error())
	case errors.Is(err, order.ErrStatusTransitionIsInvalid),
		errors.Is(err, order.ErrAmountsAreFrozen),
		errors.Is(err, courier.ErrCourierIsNotActive),
		errors.Is(err, commands.ErrOrderIsNotPending),
		errors.Is(err, ports.ErrPaymentTokenInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, newErrorResponse(CodeValidation, err.Error())
	default:
		return http.StatusInternalServerError, newErrorResponse(CodeInternal, "internal error")
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	status, body := classify(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return c.JSON(status, body)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, newErrorResponse(CodeValidation, message))
}

// handleHTTPError renders errors raised outside the handlers, such as routing
// misses and parameter binding failures, with the API error body.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		if writeErr := s.writeError(c, err); writeErr != nil {
			s.logger.Error("failed to write error response", "error", writeErr)
		}
		return
	}

	code := CodeInternal
	switch he.Code {
	case http.StatusBadRequest:
		code = CodeValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		code = CodeUnauthorized
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		code = CodeNotFound
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok {
		message = m
	}

	if writeErr := c.JSON(he.Code, newErrorResponse(code, message)); writeErr != nil {
		s.logger.Error("failed to write error response", "error", writeErr)
	}
}
