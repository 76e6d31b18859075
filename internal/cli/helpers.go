package cli

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	taskservice "github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
)

// ErrInvalidDueDate is returned for --due values that are not YYYY-MM-DD
var ErrInvalidDueDate = errors.New("invalid due date")

// ClearValue passed to --due or --image removes the value
const ClearValue = "none"

// ParseTaskID parses a positional task ID
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", taskservice.ErrInvalidTaskID, arg)
	}
	return id, nil
}

// ParsePriority maps a priority name to its level
func ParsePriority(priority string) (int, error) {
	id, err := models.ParsePriority(priority)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", taskservice.ErrInvalidPriority, priority)
	}
	return id, nil
}

// ParseDueDate parses a YYYY-MM-DD date in loc as the start of that day.
// An empty value or "none" means no due date.
func ParseDueDate(value string, loc *time.Location) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, ClearValue) {
		return nil, nil
	}
	ts, err := time.ParseInLocation(models.DateLayout, value, loc)
	if err != nil {
		return nil, fmt.Errorf("%w %q (expected %s)", ErrInvalidDueDate, value, models.DateLayout)
	}
	return models.DueAt(ts), nil
}

// ParseImage returns nil for an empty value or "none"
func ParseImage(value string) *string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, ClearValue) {
		return nil
	}
	return models.StringPtr(value)
}

// FormatDue renders a task's due date for listings
func FormatDue(task models.Task, loc *time.Location) string {
	if !task.HasDueDate() {
		return models.NoDueDateLabel
	}
	return task.Due(loc).Format(models.DateLayout)
}

// HandleError reports err through the formatter and returns the error that
// carries the matching exit code. A detached call yields nil.
func HandleError(formatter *OutputFormatter, err error) error {
	if err == nil || taskservice.Detached(err) {
		return nil
	}

	code, exit := "INTERNAL_ERROR", ExitError
	suggestion := ""
	switch {
	case taskservice.IsValidation(err), errors.Is(err, ErrInvalidDueDate):
		code, exit = "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, taskservice.ErrTaskNotFound):
		code, exit = "TASK_NOT_FOUND", ExitNotFound
	case errors.Is(err, taskservice.ErrUndoExpired):
		code = "UNDO_EXPIRED"
	case errors.Is(err, taskservice.ErrNothingToUndo):
		code = "NOTHING_TO_UNDO"
	case errors.Is(err, ErrConfig):
		code, exit = "CONFIG_ERROR", ExitDataErr
		suggestion = "Fix or remove the config file and try again"
	}

	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return Exit(exit, err)
}

// UsageError reports a misuse of the command line
func UsageError(formatter *OutputFormatter, message, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion("USAGE_ERROR", message, suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return Exit(ExitUsage, errors.New(message))
}

// NotFoundNotice reports an ID that no longer exists. Commands that only
// modify a task treat this as a no-op and exit successfully.
func NotFoundNotice(formatter *OutputFormatter, taskID int) error {
	if fmtErr := formatter.Notice("TASK_NOT_FOUND", fmt.Sprintf("Task %d not found, nothing changed", taskID)); fmtErr != nil {
		log.Printf("Error formatting notice: %v", fmtErr)
	}
	return nil
}
