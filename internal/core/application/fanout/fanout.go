package fanout

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultPublishTimeout bounds one event across all publishers.
const DefaultPublishTimeout = 2 * time.Second

// Fanout implements commands.Notifier over any number of topic publishers.
// Failures are logged and counted and never reach the caller.
type Fanout struct {
	publishers []ports.TopicPublisher
	timeout    time.Duration
	logger     *slog.Logger
	published  metric.Int64Counter
	failed     metric.Int64Counter
}

// New creates a Fanout. A zero timeout selects DefaultPublishTimeout.
func New(
	logger *slog.Logger,
	meter metric.Meter,
	timeout time.Duration,
	publishers ...ports.TopicPublisher,
) (*Fanout, error) {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}

	published, err := meter.Int64Counter("fanout.events.published",
		metric.WithDescription("Events handed to a publisher"),
	)
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter("fanout.events.failed",
		metric.WithDescription("Events a publisher failed to accept"),
	)
	if err != nil {
		return nil, err
	}

	return &Fanout{
		publishers: publishers,
		timeout:    timeout,
		logger:     logger.With("component", "fanout"),
		published:  published,
		failed:     failed,
	}, nil
}

// OrderAssigned notifies the courier, the order's subscribers and the broadcast
// topic.
func (f *Fanout) OrderAssigned(ctx context.Context, orderID, courierID kernel.UUID) {
	payload := Payload{OrderID: orderID.String(), CourierID: courierID.String()}
	f.publish(ctx, EventOrderAssigned, payload, CourierTopic(courierID), OrderTopic(orderID), ports.BroadcastTopic)
}

// OrderReassigned notifies the new courier, the previous one when there was one,
// the order's subscribers and the broadcast topic.
func (f *Fanout) OrderReassigned(ctx context.Context, orderID, courierID kernel.UUID, previousCourierID *kernel.UUID) {
	payload := Payload{OrderID: orderID.String(), CourierID: courierID.String()}
	topics := []string{CourierTopic(courierID)}
	if previousCourierID != nil && !previousCourierID.IsEqual(courierID) {
		topics = append(topics, CourierTopic(*previousCourierID))
	}
	topics = append(topics, OrderTopic(orderID), ports.BroadcastTopic)
	f.publish(ctx, EventOrderReassigned, payload, topics...)
}

// OrderStatusChanged notifies the order's subscribers only.
func (f *Fanout) OrderStatusChanged(ctx context.Context, orderID kernel.UUID, status order.Status) {
	payload := Payload{OrderID: orderID.String(), Status: status.String()}
	f.publish(ctx, EventOrderStatusUpdated, payload, OrderTopic(orderID))
}

func (f *Fanout) publish(ctx context.Context, event string, payload Payload, topics ...string) {
	// The triggering request may finish before every publisher returns.
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
	defer cancel()

	attrs := metric.WithAttributes(attribute.String("event", event))
	for _, publisher := range f.publishers {
		for _, topic := range topics {
			if err := publisher.Publish(pctx, topic, event, payload); err != nil {
				f.failed.Add(pctx, 1, attrs)
				f.logger.WarnContext(ctx, "failed to publish event",
					"event", event,
					"topic", topic,
					"order_id", payload.OrderID,
					"error", err,
				)
				continue
			}
			f.published.Add(pctx, 1, attrs)
		}
	}
}
