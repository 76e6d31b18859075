package pipeline

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/observable"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func due(ms int64) *int64 {
	return &ms
}

func ids(tasks []models.Task) []int {
	out := make([]int, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 6, Title: "file taxes", Priority: models.PriorityHigh, DueDate: due(500)},
		{ID: 5, Title: "water plants", Priority: models.PriorityLow},
		{ID: 4, Title: "renew passport", IsDone: true, Priority: models.PriorityHigh, DueDate: due(100)},
		{ID: 3, Title: "call mom", Priority: models.PriorityNormal, DueDate: due(200)},
		{ID: 2, Title: "book dentist", IsDone: true, Priority: models.PriorityLow},
		{ID: 1, Title: "read book", Priority: models.PriorityHigh},
	}
}

// ============================================================================
// RECOMPUTE
// ============================================================================

func TestRecompute_Filters(t *testing.T) {
	t.Parallel()
	tasks := sampleTasks()

	tests := []struct {
		name   string
		filter models.FilterSelection
		want   func(models.Task) bool
	}{
		{"all", models.FilterAll, func(models.Task) bool { return true }},
		{"active", models.FilterActiveOnly, func(task models.Task) bool { return !task.IsDone }},
		{"done", models.FilterDoneOnly, func(task models.Task) bool { return task.IsDone }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recompute(tasks, tt.filter, models.SortByDueDate)

			want := 0
			for _, task := range tasks {
				if tt.want(task) {
					want++
				}
			}
			assert.Len(t, got, want)
			for _, task := range got {
				assert.True(t, tt.want(task), "task %d should not pass %s", task.ID, tt.name)
			}
		})
	}
}

func TestRecompute_ByDueDate(t *testing.T) {
	t.Parallel()

	got := Recompute(sampleTasks(), models.FilterAll, models.SortByDueDate)

	// open dated, open undated (input order kept), done dated, done undated
	want := []int{3, 6, 5, 1, 4, 2}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("ByDueDate order mismatch (-want +got):\n%s", diff)
	}
}

func TestRecompute_ByPriority(t *testing.T) {
	t.Parallel()

	got := Recompute(sampleTasks(), models.FilterAll, models.SortByPriority)

	want := []int{6, 1, 3, 5, 4, 2}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("ByPriority order mismatch (-want +got):\n%s", diff)
	}
}

func TestRecompute_OrderProperties(t *testing.T) {
	t.Parallel()

	byDate := Recompute(sampleTasks(), models.FilterAll, models.SortByDueDate)
	for i := 1; i < len(byDate); i++ {
		prev, cur := byDate[i-1], byDate[i]
		if prev.IsDone != cur.IsDone {
			assert.False(t, prev.IsDone, "open tasks precede done tasks")
			continue
		}
		assert.LessOrEqual(t, dueKey(prev), dueKey(cur))
	}

	byPriority := Recompute(sampleTasks(), models.FilterAll, models.SortByPriority)
	for i := 1; i < len(byPriority); i++ {
		prev, cur := byPriority[i-1], byPriority[i]
		if prev.IsDone != cur.IsDone {
			assert.False(t, prev.IsDone)
			continue
		}
		assert.GreaterOrEqual(t, prev.Priority, cur.Priority)
	}
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	tasks := sampleTasks()
	before := sampleTasks()

	_ = Recompute(tasks, models.FilterActiveOnly, models.SortByPriority)

	if diff := cmp.Diff(before, tasks); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestRecompute_UnknownSelections(t *testing.T) {
	t.Parallel()

	got := Recompute(sampleTasks(), models.FilterSelection(42), models.SortSelection(42))

	// every task kept, open before done, otherwise input order
	assert.Equal(t, []int{6, 5, 3, 1, 4, 2}, ids(got))
}

func TestRecompute_Empty(t *testing.T) {
	t.Parallel()

	got := Recompute(nil, models.FilterAll, models.SortByDueDate)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ============================================================================
// PIPELINE
// ============================================================================

func TestPipeline_ScenarioDueDateThenPriority(t *testing.T) {
	t.Parallel()
	source := observable.NewValue([]models.Task{
		{ID: 3, Title: "C", Priority: models.PriorityNormal},
		{ID: 2, Title: "B", Priority: models.PriorityLow, DueDate: due(1000)},
		{ID: 1, Title: "A", Priority: models.PriorityHigh, DueDate: due(2000)},
	})
	p := New(source)
	defer p.Close()

	titles := func() []string {
		var out []string
		for _, task := range p.Visible().Get() {
			out = append(out, task.Title)
		}
		return out
	}

	assert.Equal(t, []string{"B", "A", "C"}, titles())

	p.SetSort(models.SortByPriority)
	assert.Equal(t, []string{"A", "C", "B"}, titles())
}

func TestPipeline_RecomputesOnEveryInput(t *testing.T) {
	t.Parallel()
	source := observable.NewValue(sampleTasks())
	p := New(source, WithFilter(models.FilterActiveOnly))
	defer p.Close()

	var deliveries [][]int
	p.Visible().Subscribe(func(tasks []models.Task) { deliveries = append(deliveries, ids(tasks)) })

	p.SetFilter(models.FilterDoneOnly)
	p.SetSort(models.SortByPriority)
	source.Set([]models.Task{{ID: 9, Title: "new", IsDone: true}})

	require.Len(t, deliveries, 4)
	assert.Equal(t, []int{3, 6, 5, 1}, deliveries[0])
	assert.Equal(t, []int{4, 2}, deliveries[1])
	assert.Equal(t, []int{4, 2}, deliveries[2])
	assert.Equal(t, []int{9}, deliveries[3])
	assert.Equal(t, models.FilterDoneOnly, p.Filter())
	assert.Equal(t, models.SortByPriority, p.Sort())
}

func TestPipeline_SetFilterIdempotent(t *testing.T) {
	t.Parallel()
	p := New(observable.NewValue(sampleTasks()))
	defer p.Close()

	p.SetFilter(models.FilterActiveOnly)
	once := p.Visible().Get()
	p.SetFilter(models.FilterActiveOnly)
	twice := p.Visible().Get()

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second SetFilter changed the result (-once +twice):\n%s", diff)
	}
}

func TestPipeline_CloseStopsUpdates(t *testing.T) {
	t.Parallel()
	source := observable.NewValue(sampleTasks())
	p := New(source)

	p.Close()
	source.Set(nil)

	assert.Len(t, p.Visible().Get(), len(sampleTasks()))
	assert.Zero(t, source.Listeners())
}

func TestPipeline_Progress(t *testing.T) {
	t.Parallel()
	source := observable.NewValue(sampleTasks())
	p := New(source)
	defer p.Close()

	assert.Equal(t, Progress{Done: 2, Total: 6, Percent: 33}, p.Progress().Get())

	p.SetFilter(models.FilterDoneOnly)
	assert.Equal(t, Progress{Done: 2, Total: 2, Percent: 100}, p.Progress().Get())

	source.Set(nil)
	assert.Equal(t, Progress{}, p.Progress().Get())
}

// ============================================================================
// TODAY
// ============================================================================

func TestDayBounds(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 10, 14, 15, 4, 5, 0, loc)

	start, end := DayBounds(now)

	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, loc).UnixMilli(), start)
	assert.Equal(t, start+24*60*60*1000-1, end)
}

func TestPipeline_Today(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, loc)
	start, end := DayBounds(now)

	source := observable.NewValue([]models.Task{
		{ID: 7, Title: "yesterday", DueDate: due(start - 1)},
		{ID: 6, Title: "midnight", DueDate: due(start)},
		{ID: 5, Title: "last ms", DueDate: due(end)},
		{ID: 4, Title: "tomorrow", DueDate: due(end + 1)},
		{ID: 3, Title: "noon done", IsDone: true, DueDate: due(now.UnixMilli())},
		{ID: 2, Title: "noon", DueDate: due(now.UnixMilli())},
		{ID: 1, Title: "someday"},
	})
	p := New(source, WithFilter(models.FilterDoneOnly), WithSort(models.SortByPriority),
		WithClock(func() time.Time { return now }))
	defer p.Close()

	want := []int{6, 2, 5, 3}
	assert.Equal(t, want, ids(p.Today(now)))
	assert.Equal(t, want, ids(p.TodayNow()), "today ignores the screen's filter and sort")
}

func TestProgressOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tasks []models.Task
		want  Progress
	}{
		{"empty", nil, Progress{}},
		{"none done", []models.Task{{}, {}}, Progress{Total: 2}},
		{"two of three", []models.Task{{IsDone: true}, {IsDone: true}, {}}, Progress{Done: 2, Total: 3, Percent: 66}},
		{"all done", []models.Task{{IsDone: true}}, Progress{Done: 1, Total: 1, Percent: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressOf(tt.tasks))
		})
	}
}
