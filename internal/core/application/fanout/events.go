// Package fanout publishes order lifecycle events to topic subscribers and
// decides who may subscribe to which topic.
package fanout

import "fooddelivery/internal/core/domain/model/kernel"

// Event names as seen by realtime clients.
const (
	EventOrderAssigned      = "pedido:asignado"
	EventOrderReassigned    = "pedido:reasignado"
	EventOrderStatusUpdated = "pedido:estado_actualizado"
)

const (
	orderTopicPrefix   = "order:"
	courierTopicPrefix = "courier:"
)

// Payload is the body of every lifecycle event.
type Payload struct {
	OrderID   string `json:"pedidoId"`
	CourierID string `json:"motorizadoId,omitempty"`
	Status    string `json:"estado,omitempty"`
}

// OrderTopic is the topic of a single order.
func OrderTopic(orderID kernel.UUID) string {
	return orderTopicPrefix + orderID.String()
}

// CourierTopic is the topic of a single courier.
func CourierTopic(courierID kernel.UUID) string {
	return courierTopicPrefix + courierID.String()
}
