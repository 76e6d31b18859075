package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	taskservice "github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/testutil"
)

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, arg := range []string{"", "abc", "0", "-1", "4.2"} {
		_, err := ParseTaskID(arg)
		assert.ErrorIs(t, err, taskservice.ErrInvalidTaskID, "arg %q", arg)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"low", models.PriorityLow},
		{"normal", models.PriorityNormal},
		{"HIGH", models.PriorityHigh},
		{" High ", models.PriorityHigh},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParsePriority("urgent")
	assert.ErrorIs(t, err, taskservice.ErrInvalidPriority)
	assert.True(t, taskservice.IsValidation(err))
}

func TestParseDueDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	due, err := ParseDueDate("2026-03-01", loc)
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc).UnixMilli(), *due)

	for _, empty := range []string{"", "  ", "none", "NONE"} {
		due, err := ParseDueDate(empty, loc)
		require.NoError(t, err)
		assert.Nil(t, due, "value %q", empty)
	}

	for _, bad := range []string{"tomorrow", "2026-13-01", "01/03/2026", "2026-03-01T10:00"} {
		_, err := ParseDueDate(bad, loc)
		assert.ErrorIs(t, err, ErrInvalidDueDate, "value %q", bad)
	}
}

func TestParseImage(t *testing.T) {
	assert.Nil(t, ParseImage(""))
	assert.Nil(t, ParseImage("none"))
	require.NotNil(t, ParseImage("file:///a.png"))
	assert.Equal(t, "file:///a.png", *ParseImage(" file:///a.png "))
}

func TestFormatDue(t *testing.T) {
	loc := time.UTC
	assert.Equal(t, models.NoDueDateLabel, FormatDue(models.Task{}, loc))

	task := models.Task{DueDate: models.DueAt(time.Date(2026, 3, 1, 0, 0, 0, 0, loc))}
	assert.Equal(t, "2026-03-01", FormatDue(task, loc))
}

func TestHandleError_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		exitCode int
	}{
		{"blank title", taskservice.ErrEmptyTitle, "VALIDATION_ERROR", ExitValidation},
		{"bad due", fmt.Errorf("%w %q", ErrInvalidDueDate, "x"), "VALIDATION_ERROR", ExitValidation},
		{"not found", fmt.Errorf("lookup: %w", taskservice.ErrTaskNotFound), "TASK_NOT_FOUND", ExitNotFound},
		{"undo expired", taskservice.ErrUndoExpired, "UNDO_EXPIRED", ExitError},
		{"nothing to undo", taskservice.ErrNothingToUndo, "NOTHING_TO_UNDO", ExitError},
		{"config", fmt.Errorf("%w: %w", ErrConfig, errors.New("bad yaml")), "CONFIG_ERROR", ExitDataErr},
		{"other", errors.New("disk full"), "INTERNAL_ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			output := testutil.CaptureOutput(t, func() {
				err = HandleError(&OutputFormatter{JSON: true}, tt.err)
			})

			assert.Equal(t, tt.exitCode, ExitCode(err))
			assert.ErrorIs(t, err, tt.err)
			errData := testutil.ParseJSON(t, output)["error"].(map[string]interface{})
			assert.Equal(t, tt.code, errData["code"])
		})
	}
}

func TestHandleError_DetachedIsSilent(t *testing.T) {
	var err error
	output := testutil.CaptureOutput(t, func() {
		err = HandleError(&OutputFormatter{JSON: true}, fmt.Errorf("save: %w", context.Canceled))
	})
	assert.NoError(t, err)
	assert.Empty(t, output)

	assert.NoError(t, HandleError(&OutputFormatter{}, nil))
}

func TestUsageError(t *testing.T) {
	var err error
	output := testutil.CaptureOutput(t, func() {
		err = UsageError(&OutputFormatter{JSON: true}, "missing --yes", "pass --yes")
	})

	assert.Equal(t, ExitUsage, ExitCode(err))
	errData := testutil.ParseJSON(t, output)["error"].(map[string]interface{})
	assert.Equal(t, "USAGE_ERROR", errData["code"])
	assert.Equal(t, "pass --yes", errData["suggestion"])
}

func TestNotFoundNotice(t *testing.T) {
	var err error
	output := testutil.CaptureOutput(t, func() {
		err = NotFoundNotice(&OutputFormatter{JSON: true}, 9)
	})

	assert.NoError(t, err)
	notice := testutil.ParseJSON(t, output)["notice"].(map[string]interface{})
	assert.Equal(t, "Task 9 not found, nothing changed", notice["message"])
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", Exit(ExitNotFound, errors.New("gone")))))

	bare := Exit(ExitUsage, nil)
	assert.Equal(t, "exit status 2", bare.Error())

	cause := errors.New("cause")
	assert.ErrorIs(t, Exit(ExitError, cause), cause)
}
