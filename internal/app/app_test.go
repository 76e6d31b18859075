package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/database"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/events"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
)

func setupApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	a := New(db, nil, opts...)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNew(t *testing.T) {
	a := setupApp(t)

	require.NotNil(t, a.TaskService)
	require.NotNil(t, a.Repo)
	assert.Same(t, a.Bus, a.Store.Bus())
	assert.False(t, a.Live())
	assert.Equal(t, config.DefaultUndoWindow, a.Config.UndoWindow)
}

func TestClose(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	a := New(db, nil)

	require.NoError(t, a.Close())
	assert.Error(t, db.Ping(), "database is closed")
}

func TestSessionState_DefaultsFromConfig(t *testing.T) {
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	cfg := config.Default()
	cfg.DefaultFilter = models.FilterActiveOnly
	a := New(db, cfg)
	defer func() { _ = a.Close() }()

	assert.Equal(t, session.State{Filter: models.FilterActiveOnly, Sort: models.SortByDueDate}, a.SessionState())
	assert.NoError(t, a.UpdateSession(func(*session.State) {}), "no session store is a no-op")
}

func TestPipeline_UsesSavedSelections(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "session.yaml"))
	require.NoError(t, store.Save(session.State{Filter: models.FilterDoneOnly, Sort: models.SortByPriority}))
	a := setupApp(t, WithSession(store))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	open, err := a.TaskService.Create(ctx, task.CreateTaskRequest{Title: "open"})
	require.NoError(t, err)
	done, err := a.TaskService.Create(ctx, task.CreateTaskRequest{Title: "done"})
	require.NoError(t, err)
	_, err = a.TaskService.ToggleDone(ctx, done.ID, true)
	require.NoError(t, err)

	p, err := a.Pipeline(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.FilterDoneOnly, p.Filter())
	assert.Equal(t, models.SortByPriority, p.Sort())
	visible := p.Visible().Get()
	require.Len(t, visible, 1)
	assert.Equal(t, done.ID, visible[0].ID)
	assert.NotEqual(t, open.ID, visible[0].ID)
}

func TestUndoWindowFromConfig(t *testing.T) {
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	a := setupApp(t, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	created, err := a.TaskService.Create(ctx, task.CreateTaskRequest{Title: "x"})
	require.NoError(t, err)
	receipt, err := a.TaskService.Delete(ctx, created.ID)
	require.NoError(t, err)

	now = now.Add(config.DefaultUndoWindow + time.Second)
	_, err = a.TaskService.Undo(ctx, *receipt)
	assert.ErrorIs(t, err, task.ErrUndoExpired)
}

// echoPublisher loops every sent event back to its listener, like the daemon
type echoPublisher struct {
	ch chan events.Event
}

func (e *echoPublisher) Connect(ctx context.Context) error { return nil }
func (e *echoPublisher) SendEvent(ev events.Event) error {
	e.ch <- ev
	return nil
}
func (e *echoPublisher) Listen(ctx context.Context) (<-chan events.Event, error) {
	return e.ch, nil
}
func (e *echoPublisher) Close() error { return nil }

func TestListen_BridgesForeignEvents(t *testing.T) {
	remote := &echoPublisher{ch: make(chan events.Event, 8)}
	a := setupApp(t, WithEventPublisher(remote))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.True(t, a.Live())
	require.NoError(t, a.Listen(ctx))

	received := make(chan events.Event, 8)
	a.Bus.Subscribe(func(e events.Event) {
		if e.Origin != a.Bus.Origin() {
			received <- e
		}
	})

	// Own mutation comes back through the echo and must be skipped
	_, err := a.TaskService.Create(ctx, task.CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)

	remote.ch <- events.Event{Type: events.EventTasksChanged, Origin: "other-process", Op: events.OpDeleteAll}

	select {
	case e := <-received:
		assert.Equal(t, "other-process", e.Origin)
	case <-time.After(time.Second):
		t.Fatal("foreign event was not bridged")
	}
	assert.Empty(t, received)
}
