package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrBusClosed is returned when publishing to a closed bus
var ErrBusClosed = errors.New("event bus closed")

type busListener struct {
	id int
	fn func(Event)
}

// Bus is an in-process event fan-out.
// Handlers run synchronously in subscription order; Publish calls are
// serialized so every handler sees events in publish order.
type Bus struct {
	origin string

	mu        sync.RWMutex // protects listeners, nextID and closed
	publishMu sync.Mutex   // serializes delivery rounds
	listeners []busListener
	nextID    int
	closed    bool
}

// NewBus creates a bus with a unique origin ID
func NewBus() *Bus {
	return &Bus{origin: uuid.NewString()}
}

// Origin identifies events produced by this bus
func (b *Bus) Origin() string {
	return b.origin
}

// Publish delivers event to every handler.
// Events without an origin or timestamp are stamped with this bus's values.
func (b *Bus) Publish(event Event) error {
	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	snapshot := make([]busListener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.RUnlock()

	if event.Origin == "" {
		event.Origin = b.origin
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for _, l := range snapshot {
		l.fn(event)
	}
	return nil
}

// Subscribe registers fn for every subsequent event
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners = append(b.listeners, busListener{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, l := range b.listeners {
				if l.id == id {
					b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Connect is a no-op; the bus has no transport
func (b *Bus) Connect(ctx context.Context) error {
	return nil
}

// SendEvent publishes event on the bus
func (b *Bus) SendEvent(event Event) error {
	return b.Publish(event)
}

// Listen returns a channel receiving every event published after the call.
// The channel is closed when ctx is done. Slow readers drop events rather
// than block publishers.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	var mu sync.Mutex
	done := false

	unsub := b.Subscribe(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return
		}
		select {
		case ch <- e:
		default:
		}
	})

	go func() {
		<-ctx.Done()
		unsub()
		mu.Lock()
		done = true
		close(ch)
		mu.Unlock()
	}()

	return ch, nil
}

// Close stops delivery; later Publish calls return ErrBusClosed
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.listeners = nil
	return nil
}
