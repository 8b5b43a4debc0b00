package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCouriers handles GET /api/v1/couriers - the dispatch board.
func (s *Server) GetCouriers(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	query, err := queries.NewGetAllCouriersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	couriers, err := s.handlers.GetAllCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, cr := range couriers {
		response[i] = servers.Courier{
			Id:            cr.ID.Bytes(),
			Name:          cr.Name,
			AccountStatus: servers.AccountStatus(cr.AccountStatus.String()),
			Available:     cr.Available,
			Location:      optionalLocation(cr.Location),
			ActiveOrders:  cr.ActiveOrders,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// SetCourierAvailability handles PUT /api/v1/couriers/me/availability.
func (s *Server) SetCourierAvailability(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req servers.SetCourierAvailabilityJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(actor, req.Available)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.SetCourierAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, servers.Message{Message: "availability updated"})
}

// SetCourierAccountStatus handles PUT /api/v1/couriers/:id/account-status.
func (s *Server) SetCourierAccountStatus(c echo.Context, id servers.ID) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	courierID, err := toID(id)
	if err != nil {
		return badRequest(c, "courier id is invalid")
	}

	var req servers.SetCourierAccountStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, err := courier.ParseAccountStatus(string(req.Status))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewSetCourierAccountStatusCommand(courierID, status, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.SetCourierAccountStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, servers.Message{Message: "account status updated"})
}
