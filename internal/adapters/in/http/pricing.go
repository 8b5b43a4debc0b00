package http

import (
	"net/http"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetPricing handles GET /api/v1/admin/pricing.
func (s *Server) GetPricing(c echo.Context) error {
	cfg, err := s.handlers.Pricing.Current(c.Request().Context())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toPricingResponse(cfg))
}

// UpdatePricing handles PUT /api/v1/admin/pricing. The new values apply to
// the next quote; existing orders keep their frozen amounts.
func (s *Server) UpdatePricing(c echo.Context) error {
	var req servers.UpdatePricingJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return badRequest(c, "latitude and longitude must be provided together")
	}

	cfg := services.TariffConfig{
		BaseFee:   req.BaseFee,
		PerKmRate: req.PerKmRate,
		RadiusKm:  req.RadiusKm,
	}
	if req.Latitude != nil {
		origin, err := kernel.NewLocation(*req.Latitude, *req.Longitude)
		if err != nil {
			return s.writeError(c, err)
		}
		cfg.Origin = &origin
	}

	if err := s.handlers.Pricing.Save(c.Request().Context(), cfg); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toPricingResponse(cfg))
}
