package observable

import (
	"context"
	"sync"
)

// Derived is a value computed from one or more sources.
// It stays subscribed to its sources until Close is called.
type Derived[T any] struct {
	*Value[T]
	computeMu sync.Mutex
	unsubs    []func()
	closeOnce sync.Once
}

// Close detaches the derived value from its sources.
// The last computed value remains readable.
func (d *Derived[T]) Close() {
	d.closeOnce.Do(func() {
		for _, unsub := range d.unsubs {
			unsub()
		}
	})
}

// Map derives a value by applying fn to every value of src
func Map[A, R any](src Observable[A], fn func(A) R) *Derived[R] {
	d := &Derived[R]{Value: NewValue(fn(src.Get()))}
	recompute := func() {
		d.computeMu.Lock()
		defer d.computeMu.Unlock()
		d.Set(fn(src.Get()))
	}
	d.unsubs = append(d.unsubs, watch(src, recompute))
	// Catch a Set that landed before the watch was in place
	recompute()
	return d
}

// Combine3 derives a value from the latest values of three sources.
// fn is re-evaluated whenever any source changes and always sees the most
// recently set value of every source.
func Combine3[A, B, C, R any](a Observable[A], b Observable[B], c Observable[C], fn func(A, B, C) R) *Derived[R] {
	d := &Derived[R]{Value: NewValue(fn(a.Get(), b.Get(), c.Get()))}
	recompute := func() {
		d.computeMu.Lock()
		defer d.computeMu.Unlock()
		d.Set(fn(a.Get(), b.Get(), c.Get()))
	}
	d.unsubs = append(d.unsubs,
		watch(a, recompute),
		watch(b, recompute),
		watch(c, recompute),
	)
	// Catch a Set that landed before the watches were in place
	recompute()
	return d
}

// watch subscribes to src without recomputing for the initial replay
func watch[T any](src Observable[T], fn func()) func() {
	primed := false
	return src.Subscribe(func(T) {
		if !primed {
			primed = true
			return
		}
		fn()
	})
}

// Channel delivers the values of src on a channel until ctx is done.
// The channel holds only the latest value: a slow reader skips intermediate
// values but always receives the newest one. The channel is never closed;
// readers should also select on ctx.Done().
func Channel[T any](ctx context.Context, src Observable[T]) <-chan T {
	ch := make(chan T, 1)
	unsub := src.Subscribe(func(v T) {
		if ctx.Err() != nil {
			return
		}
		select {
		case <-ch:
		default:
		}
		ch <- v
	})
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return ch
}
