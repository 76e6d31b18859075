package task

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/app"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/testutil"
	testutilcli "github.com/Oshri-Halevi/TaskManagerApp/internal/testutil/cli"
)

// testNow is the clock of command tests: midday, so the day boundaries
// are unambiguous in any local zone
var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)

func setupApp(t *testing.T) *app.App {
	t.Helper()
	_, a := testutilcli.SetupCLITest(t, app.WithClock(testutilcli.FixedClock(testNow)))
	return a
}

// runJSON executes cmd with --json and returns the parsed result
func runJSON(t *testing.T, a *app.App, cmd *cobra.Command, args ...string) map[string]interface{} {
	t.Helper()
	output, err := testutilcli.ExecuteCLICommand(t, a, cmd, append(args, "--json"))
	require.NoError(t, err, "output: %s", output)
	return testutil.ParseJSON(t, output)
}

// addTask creates a task through the add command and returns its ID
func addTask(t *testing.T, a *app.App, args ...string) int {
	t.Helper()
	output, err := testutilcli.ExecuteCLICommand(t, a, AddCmd(), append(args, "--quiet"))
	require.NoError(t, err, "output: %s", output)
	id, err := strconv.Atoi(strings.TrimSpace(output))
	require.NoError(t, err, "expected numeric task ID, got: %s", output)
	return id
}

// ids extracts the task IDs of a JSON list result in order
func ids(t *testing.T, result map[string]interface{}) []int {
	t.Helper()
	raw, ok := result["tasks"].([]interface{})
	require.True(t, ok, "tasks missing from %v", result)
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		out = append(out, int(item.(map[string]interface{})["id"].(float64)))
	}
	return out
}

func TestCommands_AllRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"add", "edit", "done", "rm", "undo", "clear", "list", "today", "show", "watch"} {
		require.True(t, names[want], "missing command %q", want)
	}
}

func TestTaskJSON(t *testing.T) {
	loc := time.UTC
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	task := models.Task{
		ID:       7,
		Title:    "Write report",
		Priority: models.PriorityHigh,
		ImageURI: models.StringPtr("file:///chart.png"),
		DueDate:  models.DueAt(due),
	}

	out := taskJSON(task, loc)
	require.Equal(t, "high", out["priority"])
	require.Equal(t, "2026-03-01", out["due_date"])
	require.Equal(t, "file:///chart.png", out["image_uri"])

	bare := taskJSON(models.Task{ID: 8, Title: "Bare"}, loc)
	require.Nil(t, bare["due_date"])
	require.Nil(t, bare["image_uri"])
	require.Equal(t, "low", bare["priority"])
}
