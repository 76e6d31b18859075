package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "session.yaml"))
}

func TestLoad_MissingFileUsesFallback(t *testing.T) {
	store := newTestStore(t)
	fallback := State{Filter: models.FilterDoneOnly, Sort: models.SortByPriority}

	state, err := store.Load(fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, state)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	due := int64(1_790_000_000_000)
	deletedAt := time.Date(2026, 10, 14, 8, 30, 0, 0, time.UTC)

	want := State{
		Filter: models.FilterActiveOnly,
		Sort:   models.SortByPriority,
		LastDeletion: &task.DeletionReceipt{
			Task: models.Task{
				ID:       12,
				Title:    "Return library books",
				Priority: models.PriorityHigh,
				DueDate:  &due,
				ImageURI: models.StringPtr("content://media/3"),
			},
			DeletedAt: deletedAt,
		},
	}

	require.NoError(t, store.Save(want))

	got, err := store.Load(State{})
	require.NoError(t, err)
	require.NotNil(t, got.LastDeletion)
	assert.Equal(t, want.Filter, got.Filter)
	assert.Equal(t, want.Sort, got.Sort)
	assert.Equal(t, want.LastDeletion.Task, got.LastDeletion.Task)
	assert.True(t, deletedAt.Equal(got.LastDeletion.DeletedAt))
}

func TestLoad_PartialFileKeepsFallbackFields(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("sort: priority\n"), 0o600))

	state, err := store.Load(State{Filter: models.FilterDoneOnly})
	require.NoError(t, err)
	assert.Equal(t, models.FilterDoneOnly, state.Filter)
	assert.Equal(t, models.SortByPriority, state.Sort)
	assert.Nil(t, state.LastDeletion)
}

func TestLoad_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("filter: sometimes\n"), 0o600))

	_, err := store.Load(State{})
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Update(State{}, func(s *State) { s.Filter = models.FilterActiveOnly })
	require.NoError(t, err)

	state, err := store.Update(State{}, func(s *State) { s.Sort = models.SortByPriority })
	require.NoError(t, err)
	assert.Equal(t, State{Filter: models.FilterActiveOnly, Sort: models.SortByPriority}, state)
}
