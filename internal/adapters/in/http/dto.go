package http

import (
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Money is rendered with two decimals.
func money(d decimal.Decimal) servers.Money {
	return d.StringFixed(2)
}

func toID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := toID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func optionalAPIID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	apiID := id.Bytes()
	return &apiID
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalLocation(loc *kernel.Location) *servers.Location {
	if loc == nil {
		return nil
	}
	return &servers.Location{Latitude: loc.Latitude(), Longitude: loc.Longitude()}
}

func toCreateOrderResponse(r commands.CreateOrderResult) servers.CreateOrderResponse {
	return servers.CreateOrderResponse{
		Id:                r.ID.Bytes(),
		Status:            servers.OrderStatus(r.Status.String()),
		CourierId:         optionalAPIID(r.CourierID),
		AssignmentMessage: r.AssignmentMessage,
		Subtotal:          money(r.Subtotal),
		ShippingFee:       money(r.ShippingFee),
		Discount:          money(r.Discount),
		Total:             money(r.Total),
		DistanceKm:        r.DistanceKm,
	}
}

func toOrderResponse(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: money(item.UnitPrice),
			LineTotal: money(item.LineTotal),
		}
	}

	return servers.Order{
		Id:            v.ID.Bytes(),
		CustomerId:    v.CustomerID.Bytes(),
		MerchantId:    optionalAPIID(v.MerchantID),
		CourierId:     optionalAPIID(v.CourierID),
		Status:        servers.OrderStatus(v.Status.String()),
		PaymentMethod: servers.PaymentMethod(v.PaymentMethod),
		PaymentStatus: servers.PaymentStatus(v.PaymentStatus),
		Address:       v.Address,
		Destination:   optionalLocation(v.Destination),
		Items:         items,
		Subtotal:      money(v.Subtotal),
		ShippingFee:   money(v.ShippingFee),
		Discount:      money(v.Discount),
		Total:         money(v.Total),
		PromoCode:     optionalText(v.PromoCode),
		DeliveryCode:  optionalText(v.DeliveryCode),
		DeliveredAt:   v.DeliveredAt,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toHistoryEntry(e queries.HistoryEntryView) servers.HistoryEntry {
	entry := servers.HistoryEntry{
		To:      servers.OrderStatus(e.To.String()),
		ActorId: optionalAPIID(e.ActorID),
		Note:    optionalText(e.Note),
		At:      e.At,
	}
	if e.From != order.Unknown {
		from := servers.OrderStatus(e.From.String())
		entry.From = &from
	}
	return entry
}

func toPricingResponse(cfg services.TariffConfig) servers.Pricing {
	return servers.Pricing{
		BaseFee:   money(cfg.BaseFee),
		PerKmRate: money(cfg.PerKmRate),
		RadiusKm:  cfg.RadiusKm,
		Origin:    optionalLocation(cfg.Origin),
	}
}
