package database

import (
	"context"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	// GetByID returns models.ErrTaskNotFound when no task has the given id
	GetByID(ctx context.Context, id int) (*models.Task, error)

	// All returns every task, newest first
	All(ctx context.Context) ([]models.Task, error)

	// List starts a live query that re-delivers All after every change
	List(ctx context.Context) (*LiveQuery, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	// Insert stores task and returns it with its assigned id. task.ID is ignored.
	Insert(ctx context.Context, task models.Task) (*models.Task, error)

	// Update replaces every field of the task with task.ID
	Update(ctx context.Context, task models.Task) error

	// Delete removes the task with task.ID
	Delete(ctx context.Context, task models.Task) error

	// DeleteAll removes every task
	DeleteAll(ctx context.Context) error
}

// TaskStore combines all task persistence operations.
type TaskStore interface {
	TaskReader
	TaskWriter
}

// Compile-time verification that *SQLiteStore implements TaskStore
var _ TaskStore = (*SQLiteStore)(nil)
