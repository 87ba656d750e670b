package bus

import "context"

// Subscriber receives events published on a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Events returns the channel delivering published events.
	// The channel is closed when the subscriber is closed.
	Events() <-chan T

	// Close unsubscribes and closes the event channel.
	// Close is idempotent and safe to call multiple times.
	Close() error
}

// Broadcaster fans events out to every active subscriber.
// Publishing must never block on a slow consumer; a subscriber whose buffer
// is full misses the event and is unsubscribed.
type Broadcaster[T any] interface {
	// Subscribe registers a new subscriber. The subscription is torn down
	// automatically when ctx is cancelled.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish delivers an event to all active subscribers. A subscriber
	// that cannot keep up misses the event and its subscription ends.
	Publish(ctx context.Context, event T) error

	// Close shuts down the broadcaster and every subscriber.
	Close() error
}
