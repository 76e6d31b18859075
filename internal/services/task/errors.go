package task

import (
	"errors"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidPriority = errors.New("invalid priority: must be low, normal or high")

	// Business logic errors
	ErrTaskNotFound  = models.ErrTaskNotFound
	ErrUndoExpired   = errors.New("undo window has expired")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// IsValidation reports whether err was rejected before reaching the store
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidTaskID) ||
		errors.Is(err, ErrInvalidPriority)
}
