package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. Customers order for themselves;
// admins must name the customer.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req servers.CreateOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	customerID := actor.UserID()
	if req.CustomerId != nil {
		id, err := toID(*req.CustomerId)
		if err != nil {
			return badRequest(c, "customerId is invalid")
		}
		customerID = id
	}

	merchantID, err := optionalID(req.MerchantId)
	if err != nil {
		return badRequest(c, "merchantId is invalid")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := toID(line.ProductId)
		if err != nil {
			return badRequest(c, "productId is invalid")
		}
		item, err := order.NewItem(productID, line.Name, line.Quantity, line.UnitPrice)
		if err != nil {
			return s.writeError(c, err)
		}
		items = append(items, item)
	}

	var destination *kernel.Location
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		loc, err := kernel.NewLocation(*req.Latitude, *req.Longitude)
		if err != nil {
			return s.writeError(c, err)
		}
		destination = &loc
	case req.Latitude != nil || req.Longitude != nil:
		return badRequest(c, "latitude and longitude must be sent together")
	}

	paymentMethod, err := order.ParsePaymentMethod(string(req.PaymentMethod))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor, customerID, merchantID, items, req.Address, paymentMethod, destination, textOrEmpty(req.PromoCode),
	)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toCreateOrderResponse(result))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context, id servers.ID) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, err := toID(id)
	if err != nil {
		return badRequest(c, "order id is invalid")
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(view))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(c echo.Context, id servers.ID) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, err := toID(id)
	if err != nil {
		return badRequest(c, "order id is invalid")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	entries, err := s.handlers.GetOrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = toHistoryEntry(e)
	}
	return c.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	query, err := queries.NewGetActiveOrdersQuery(actor)
	if err != nil {
		return s.writeError(c, err)
	}

	orders, err := s.handlers.GetActiveOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.ActiveOrder{
			Id:         o.ID.Bytes(),
			CustomerId: o.CustomerID.Bytes(),
			CourierId:  optionalAPIID(o.CourierID),
			Status:     servers.OrderStatus(o.Status.String()),
			Address:    o.Address,
			Total:      money(o.Total),
			CreatedAt:  o.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context, id servers.ID) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, err := toID(id)
	if err != nil {
		return badRequest(c, "order id is invalid")
	}

	var req servers.UpdateOrderStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	target, err := order.ParseStatus(string(req.Estado))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, actor, textOrEmpty(req.Nota))
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, servers.UpdateStatusResponse{
		Message:      "status updated",
		Status:       servers.OrderStatus(result.Status.String()),
		DeliveryCode: optionalText(result.DeliveryCode.String()),
	})
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm-delivery.
func (s *Server) ConfirmDelivery(c echo.Context, id servers.ID) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, err := toID(id)
	if err != nil {
		return badRequest(c, "order id is invalid")
	}

	var req servers.ConfirmDeliveryJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, req.Codigo, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.ConfirmDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, servers.Message{Message: "delivery confirmed"})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. The body is optional.
func (s *Server) CancelOrder(c echo.Context, id servers.ID) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, err := toID(id)
	if err != nil {
		return badRequest(c, "order id is invalid")
	}

	var req servers.CancelOrderJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, textOrEmpty(req.Nota))
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, servers.Message{Message: "order cancelled"})
}

// ReassignCourier handles PUT /api/v1/orders/admin/reassign.
func (s *Server) ReassignCourier(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req servers.ReassignCourierJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderID, err := toID(req.PedidoId)
	if err != nil {
		return badRequest(c, "pedidoId is invalid")
	}
	courierID, err := toID(req.MotorizadoId)
	if err != nil {
		return badRequest(c, "motorizadoId is invalid")
	}

	cmd, err := commands.NewReassignCourierCommand(orderID, courierID, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.ReassignCourier.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, servers.Message{Message: "courier reassigned"})
}

// IssuePaymentToken handles POST /api/v1/orders/:id/payment-token.
func (s *Server) IssuePaymentToken(c echo.Context, id servers.ID) error {
	actor, ok := actorFrom(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, err := toID(id)
	if err != nil {
		return badRequest(c, "order id is invalid")
	}

	cmd, err := commands.NewIssuePaymentTokenCommand(orderID, actor)
	if err != nil {
		return s.writeError(c, err)
	}

	token, err := s.handlers.IssuePaymentToken.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, servers.PaymentToken{Token: token.Token, ExpiresAt: token.ExpiresAt})
}
