package database

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/events"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/observable"
)

// LiveQuery is an observable task set that re-reads the store after every
// change event, local or bridged from the daemon. It stops when its context
// is done or Close is called.
type LiveQuery struct {
	tasks *observable.Value[[]models.Task]

	mu        sync.Mutex
	lastErr   error
	refreshes int // refreshes started, guarded by mu

	unsub     func()
	closeOnce sync.Once
}

// List subscribes to change events, then runs the initial query
// synchronously, and keeps the result current from then on
func (s *SQLiteStore) List(ctx context.Context) (*LiveQuery, error) {
	q := &LiveQuery{tasks: observable.NewValue[[]models.Task](nil)}

	q.unsub = s.bus.Subscribe(func(e events.Event) {
		if e.Type != events.EventTasksChanged || ctx.Err() != nil {
			return
		}
		q.refresh(ctx, s)
	})

	initial, err := s.All(ctx)
	if err != nil {
		q.Close()
		return nil, err
	}
	if s.afterInitialLoad != nil {
		s.afterInitialLoad()
	}

	// A change during the initial query may not be in its result. Refreshes
	// starting after this check read a newer task set than initial.
	q.mu.Lock()
	changed := q.refreshes > 0
	q.tasks.Set(initial)
	q.mu.Unlock()
	if changed {
		q.refresh(ctx, s)
	}

	go func() {
		<-ctx.Done()
		q.Close()
	}()

	return q, nil
}

func (q *LiveQuery) refresh(ctx context.Context, s *SQLiteStore) {
	q.mu.Lock()
	q.refreshes++
	q.mu.Unlock()

	tasks, err := s.All(ctx)

	q.mu.Lock()
	q.lastErr = err
	q.mu.Unlock()

	if err != nil {
		// A detached consumer discards its in-flight result
		if !errors.Is(err, context.Canceled) {
			slog.Error("live task query refresh failed", "error", err)
		}
		return
	}
	q.tasks.Set(tasks)
}

// Get returns the latest delivered task set
func (q *LiveQuery) Get() []models.Task {
	return q.tasks.Get()
}

// Subscribe implements observable.Observable
func (q *LiveQuery) Subscribe(fn func([]models.Task)) func() {
	return q.tasks.Subscribe(fn)
}

// Err returns the error from the most recent refresh, if it failed
func (q *LiveQuery) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastErr
}

// Close stops refreshing; the last task set stays readable
func (q *LiveQuery) Close() {
	q.closeOnce.Do(func() {
		if q.unsub != nil {
			q.unsub()
		}
	})
}

// Compile-time verification that *LiveQuery is observable
var _ observable.Observable[[]models.Task] = (*LiveQuery)(nil)
