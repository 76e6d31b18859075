package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// Both the in-process Bus and the daemon Client implement it.
type EventPublisher interface {
	// Connect establishes the underlying transport, if any
	Connect(ctx context.Context) error

	// SendEvent queues an event for delivery
	SendEvent(event Event) error

	// Listen delivers events until ctx is done
	Listen(ctx context.Context) (<-chan Event, error)

	// Close releases the transport and stops all goroutines
	Close() error
}

// Compile-time verification of EventPublisher implementations
var (
	_ EventPublisher = (*Client)(nil)
	_ EventPublisher = (*Bus)(nil)
)
