package task

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/app"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	testutilcli "github.com/Oshri-Halevi/TaskManagerApp/internal/testutil/cli"
)

// listFixture holds the IDs of the tasks created by seedList
type listFixture struct {
	app     *app.App
	late    int // normal, due 03-09
	early   int // low, due 03-02
	undated int // high, no due date
	today   int // low, due 03-01
	done    int // high, due 03-01, completed
}

func seedList(t *testing.T) listFixture {
	t.Helper()
	a := setupApp(t)
	f := listFixture{app: a}
	f.late = addTask(t, a, "--title", "late", "--priority", "normal", "--due", "2026-03-09")
	f.early = addTask(t, a, "--title", "early", "--priority", "low", "--due", "2026-03-02")
	f.undated = addTask(t, a, "--title", "undated", "--priority", "high")
	f.today = addTask(t, a, "--title", "today", "--priority", "low", "--due", "2026-03-01")
	f.done = addTask(t, a, "--title", "done", "--priority", "high", "--due", "2026-03-01")
	runJSON(t, a, DoneCmd(), strconv.Itoa(f.done))
	return f
}

func TestListCommand_FilterAndSort(t *testing.T) {
	f := seedList(t)

	tests := []struct {
		name string
		args []string
		want []int
	}{
		{
			name: "all by date, open first, undated last",
			args: []string{"--filter", "all", "--sort", "date"},
			want: []int{f.today, f.early, f.late, f.undated, f.done},
		},
		{
			name: "all by priority, stable within a level",
			args: []string{"--filter", "all", "--sort", "priority"},
			want: []int{f.undated, f.late, f.today, f.early, f.done},
		},
		{
			name: "active only",
			args: []string{"--filter", "active", "--sort", "date"},
			want: []int{f.today, f.early, f.late, f.undated},
		},
		{
			name: "done only",
			args: []string{"--filter", "done"},
			want: []int{f.done},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runJSON(t, f.app, ListCmd(), tt.args...)
			assert.Equal(t, tt.want, ids(t, result))
		})
	}
}

func TestListCommand_PriorityTiesKeepStoreOrder(t *testing.T) {
	f := seedList(t)

	// Store order is newest first, so among the low tasks "today" (newer)
	// precedes "early"
	result := runJSON(t, f.app, ListCmd(), "--sort", "priority", "--filter", "active")
	got := ids(t, result)
	require.Len(t, got, 4)
	assert.Equal(t, []int{f.today, f.early}, got[2:])
}

func TestListCommand_Progress(t *testing.T) {
	f := seedList(t)

	result := runJSON(t, f.app, ListCmd(), "--filter", "all")
	progress := result["progress"].(map[string]interface{})

	assert.Equal(t, float64(1), progress["done"])
	assert.Equal(t, float64(5), progress["total"])
	assert.Equal(t, float64(20), progress["percent"])
	assert.Equal(t, "all", result["filter"])
}

func TestListCommand_RemembersSelection(t *testing.T) {
	f := seedList(t)

	runJSON(t, f.app, ListCmd(), "--filter", "done", "--sort", "priority")

	result := runJSON(t, f.app, ListCmd())
	assert.Equal(t, "done", result["filter"])
	assert.Equal(t, "priority", result["sort"])
	assert.Equal(t, []int{f.done}, ids(t, result))

	state := f.app.SessionState()
	assert.Equal(t, "done", state.Filter.String())
}

func TestListCommand_InvalidSelection(t *testing.T) {
	a := setupApp(t)

	for _, args := range [][]string{{"--filter", "someday"}, {"--sort", "alphabetical"}} {
		_, err := testutilcli.ExecuteCLICommand(t, a, ListCmd(), args)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "args %v", args)
	}
}

func TestListCommand_Output(t *testing.T) {
	f := seedList(t)

	output, err := testutilcli.ExecuteCLICommand(t, f.app, ListCmd(), []string{"--filter", "done", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(f.done)+"\n", output)

	output, err = testutilcli.ExecuteCLICommand(t, f.app, ListCmd(), []string{"--filter", "all"})
	require.NoError(t, err)
	assert.Contains(t, output, "filter: all")
	assert.Contains(t, output, "undated")
	assert.Contains(t, output, "1/5")
}

func TestListCommand_Empty(t *testing.T) {
	a := setupApp(t)

	output, err := testutilcli.ExecuteCLICommand(t, a, ListCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks")

	result := runJSON(t, a, ListCmd())
	assert.Empty(t, ids(t, result))
	progress := result["progress"].(map[string]interface{})
	assert.Equal(t, float64(0), progress["percent"])
}

func TestTodayCommand(t *testing.T) {
	f := seedList(t)

	// The saved selection does not affect today
	runJSON(t, f.app, ListCmd(), "--filter", "active")

	result := runJSON(t, f.app, TodayCmd())
	assert.Equal(t, "2026-03-01", result["date"])
	assert.Equal(t, []int{f.today, f.done}, ids(t, result))

	progress := result["progress"].(map[string]interface{})
	assert.Equal(t, float64(1), progress["done"])
	assert.Equal(t, float64(2), progress["total"])
	assert.Equal(t, float64(50), progress["percent"])

	output, err := testutilcli.ExecuteCLICommand(t, f.app, TodayCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "Today (2026-03-01)")
}
