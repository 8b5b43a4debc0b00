package ports

import "context"

// BroadcastTopic is the unscoped topic every connected observer receives.
const BroadcastTopic = "*"

// TopicPublisher delivers an event to the subscribers of a topic. Delivery is
// best-effort; implementations must not block on slow subscribers.
type TopicPublisher interface {
	Publish(ctx context.Context, topic, event string, payload any) error
}
