package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/events"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func TestList_DeliversInitialAndChanges(t *testing.T) {
	t.Parallel()
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	insertTestTask(t, store, models.Task{Title: "existing", Priority: 1})

	live, err := store.List(ctx)
	require.NoError(t, err)

	var deliveries [][]string
	live.Subscribe(func(tasks []models.Task) { deliveries = append(deliveries, titles(tasks)) })

	created := insertTestTask(t, store, models.Task{Title: "new", Priority: 1})
	require.NoError(t, store.Delete(ctx, *created))

	assert.Equal(t, [][]string{
		{"existing"},
		{"new", "existing"},
		{"existing"},
	}, deliveries)
	assert.NoError(t, live.Err())
}

func TestList_RefreshesOnBridgedEvent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	bus := events.NewBus()
	store := NewTaskStore(db, bus, nil)
	ctx := context.Background()

	live, err := store.List(ctx)
	require.NoError(t, err)
	defer live.Close()

	// Another process wrote directly; only the daemon event tells us
	_, err = db.ExecContext(ctx, `INSERT INTO tasks (title, priority) VALUES ('remote', 1)`)
	require.NoError(t, err)
	assert.Empty(t, live.Get())

	require.NoError(t, bus.Publish(events.Event{Type: events.EventTasksChanged, Origin: "other"}))
	assert.Equal(t, []string{"remote"}, titles(live.Get()))
}

func TestList_ChangeDuringInitialQueryIsNotLost(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	bus := events.NewBus()
	store := NewTaskStore(db, bus, nil)
	ctx := context.Background()

	insertTestTask(t, store, models.Task{Title: "existing", Priority: 1})

	// Another process inserts after the initial query already ran
	store.afterInitialLoad = func() {
		_, err := db.ExecContext(ctx, `INSERT INTO tasks (title, priority) VALUES ('remote', 1)`)
		require.NoError(t, err)
		require.NoError(t, bus.Publish(events.Event{Type: events.EventTasksChanged, Origin: "other"}))
	}

	live, err := store.List(ctx)
	require.NoError(t, err)
	defer live.Close()

	assert.Equal(t, []string{"remote", "existing"}, titles(live.Get()))
}

func TestList_InitialQueryWithoutChanges(t *testing.T) {
	t.Parallel()
	store := setupTestStore(t)
	insertTestTask(t, store, models.Task{Title: "only", Priority: 1})

	var hookRan bool
	store.afterInitialLoad = func() { hookRan = true }

	live, err := store.List(context.Background())
	require.NoError(t, err)
	defer live.Close()

	assert.True(t, hookRan)
	assert.Equal(t, []string{"only"}, titles(live.Get()))
}

func TestList_StopsAfterCancel(t *testing.T) {
	t.Parallel()
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	live, err := store.List(ctx)
	require.NoError(t, err)

	cancel()
	// Close runs on a goroutine once ctx is done
	time.Sleep(20 * time.Millisecond)

	insertTestTask(t, store, models.Task{Title: "after", Priority: 1})
	assert.Empty(t, live.Get(), "detached query keeps its last result")
	assert.NoError(t, live.Err())
}

func TestList_InitialQueryError(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	store := NewTaskStore(db, nil, nil)
	require.NoError(t, db.Close())

	_, err := store.List(context.Background())
	assert.Error(t, err)
}
