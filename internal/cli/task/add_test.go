package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/testutil"
	testutilcli "github.com/Oshri-Halevi/TaskManagerApp/internal/testutil/cli"
)

func TestAddCommand(t *testing.T) {
	a := setupApp(t)

	tests := []struct {
		name      string
		args      []string
		exitCode  int
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "title only uses defaults",
			args: []string{"--title", "Buy milk", "--json"},
			checkFunc: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				task := result["task"].(map[string]interface{})
				assert.Equal(t, "Buy milk", task["title"])
				assert.Equal(t, "normal", task["priority"])
				assert.Equal(t, false, task["is_done"])
				assert.Nil(t, task["due_date"])
				assert.Nil(t, task["image_uri"])
			},
		},
		{
			name: "all fields",
			args: []string{
				"--title", "Write report",
				"--description", "Quarterly numbers",
				"--priority", "high",
				"--due", "2026-03-05",
				"--image", "file:///chart.png",
				"--json",
			},
			checkFunc: func(t *testing.T, output string) {
				task := testutil.ParseJSON(t, output)["task"].(map[string]interface{})
				assert.Equal(t, "Quarterly numbers", task["description"])
				assert.Equal(t, "high", task["priority"])
				assert.Equal(t, "2026-03-05", task["due_date"])
				assert.Equal(t, "file:///chart.png", task["image_uri"])
			},
		},
		{
			name: "human output",
			args: []string{"--title", "Call mom"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "Task 'Call mom' created successfully")
				assert.Contains(t, output, "no date")
			},
		},
		{
			name:     "blank title",
			args:     []string{"--title", "   "},
			exitCode: cli.ExitValidation,
		},
		{
			name:     "missing title",
			args:     []string{"--priority", "low"},
			exitCode: cli.ExitValidation,
		},
		{
			name:     "unknown priority",
			args:     []string{"--title", "x", "--priority", "urgent"},
			exitCode: cli.ExitValidation,
		},
		{
			name:     "malformed due date",
			args:     []string{"--title", "x", "--due", "03/01/2026"},
			exitCode: cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutilcli.ExecuteCLICommand(t, a, AddCmd(), tt.args)
			require.Equal(t, tt.exitCode, cli.ExitCode(err), "err: %v, output: %s", err, output)
			if tt.checkFunc != nil {
				tt.checkFunc(t, output)
			}
		})
	}
}

func TestAddCommand_QuietPrintsID(t *testing.T) {
	a := setupApp(t)

	first := addTask(t, a, "--title", "One")
	second := addTask(t, a, "--title", "Two")

	assert.Positive(t, first)
	assert.Greater(t, second, first)
}

func TestAddCommand_ValidationErrorJSON(t *testing.T) {
	a := setupApp(t)

	output, err := testutilcli.ExecuteCLICommand(t, a, AddCmd(), []string{"--title", "", "--json"})
	require.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	result := testutil.ParseJSON(t, strings.TrimSpace(output))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errData["code"])

	count, err := a.Store.Count(t.Context())
	require.NoError(t, err)
	assert.Zero(t, count, "rejected task must not be stored")
}
