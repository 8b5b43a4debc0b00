// Package kafka forwards order lifecycle events to a Kafka topic for
// downstream consumers.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Message is the value written for every event.
type Message struct {
	Event      string          `json:"event"`
	Topic      string          `json:"topic"`
	Data       json.RawMessage `json:"data"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ ports.TopicPublisher = (*Publisher)(nil)

// Publisher implements ports.TopicPublisher. The fanout topic is the message
// key so all events of one order land on the same partition. Broadcast events
// are not forwarded.
type Publisher struct {
	writer     MessageWriter
	topic      string
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	now        func() time.Time
}

// NewPublisher creates an asynchronous writer. Delivery errors are logged.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	return NewPublisherWithWriter(newWriter(brokers, topic, logger), topic)
}

// newWriter hashes the message key to pick the partition.
func newWriter(brokers []string, topic string, logger *slog.Logger) *kafka.Writer {
	log := logger.With("component", "kafka_publisher", "topic", topic)
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           100 * time.Millisecond,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("failed to deliver events", "count", len(messages), "error", err)
			}
		},
	}
}

func NewPublisherWithWriter(writer MessageWriter, topic string) *Publisher {
	return &Publisher{
		writer:     writer,
		topic:      topic,
		tracer:     otel.Tracer("kafka/producer"),
		propagator: otel.GetTextMapPropagator(),
		now:        time.Now,
	}
}

func (p *Publisher) Publish(ctx context.Context, topic, event string, payload any) error {
	if topic == ports.BroadcastTopic {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	value, err := json.Marshal(Message{Event: event, Topic: topic, Data: data, OccurredAt: p.now().UTC()})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(topic),
		Value: value,
	}

	ctx, span := p.tracer.Start(ctx, "send "+p.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("send"),
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(p.topic),
			semconv.MessagingKafkaMessageKey(topic),
		),
	)
	defer span.End()

	p.propagator.Inject(ctx, NewMessageCarrier(&msg))

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Close flushes pending messages.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
