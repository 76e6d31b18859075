// Package observable provides observable values with ordered listener
// notification and combinators for deriving values from them.
package observable

import "sync"

// Observable is a read-only view of a value that can change over time.
type Observable[T any] interface {
	// Get returns the current value
	Get() T

	// Subscribe registers fn and immediately calls it with the current value.
	// fn is then called with every new value, in the order values are set.
	// The returned function removes the listener; it is safe to call more than once.
	Subscribe(fn func(T)) (unsubscribe func())
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Value holds a value and notifies listeners whenever it is set.
//
// Notification rounds are serialized: listeners observe values in the order
// Set was called, and every listener sees a round before the next one starts.
// A listener must not synchronously Set a value it (directly or through a
// combinator) depends on, since notification is not reentrant.
type Value[T any] struct {
	mu        sync.RWMutex // protects value, listeners and nextID
	notifyMu  sync.Mutex   // serializes notification rounds
	value     T
	listeners []listener[T]
	nextID    int
}

// NewValue creates a Value holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set replaces the value and notifies every listener (last write wins)
func (v *Value[T]) Set(value T) {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	v.value = value
	snapshot := make([]listener[T], len(v.listeners))
	copy(snapshot, v.listeners)
	v.mu.Unlock()

	for _, l := range snapshot {
		l.fn(value)
	}
}

// Update applies fn to the current value and sets the result
func (v *Value[T]) Update(fn func(T) T) {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	next := fn(v.value)
	v.value = next
	snapshot := make([]listener[T], len(v.listeners))
	copy(snapshot, v.listeners)
	v.mu.Unlock()

	for _, l := range snapshot {
		l.fn(next)
	}
}

// Subscribe implements Observable
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners = append(v.listeners, listener[T]{id: id, fn: fn})
	current := v.value
	v.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { v.remove(id) })
	}
}

// Listeners returns the number of registered listeners
func (v *Value[T]) Listeners() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.listeners)
}

func (v *Value[T]) remove(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, l := range v.listeners {
		if l.id == id {
			v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
			return
		}
	}
}

// Compile-time verification that *Value implements Observable
var _ Observable[int] = (*Value[int])(nil)
