// Package repository exposes task persistence to the rest of the app.
// It forwards every call to the underlying store unchanged.
package repository

import (
	"context"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/database"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// TaskRepository is a pass-through facade over a database.TaskStore
type TaskRepository struct {
	store database.TaskStore
}

// New wraps store
func New(store database.TaskStore) *TaskRepository {
	return &TaskRepository{store: store}
}

// List returns the live, newest-first task set
func (r *TaskRepository) List(ctx context.Context) (*database.LiveQuery, error) {
	return r.store.List(ctx)
}

func (r *TaskRepository) Insert(ctx context.Context, task models.Task) (*models.Task, error) {
	return r.store.Insert(ctx, task)
}

func (r *TaskRepository) Update(ctx context.Context, task models.Task) error {
	return r.store.Update(ctx, task)
}

func (r *TaskRepository) Delete(ctx context.Context, task models.Task) error {
	return r.store.Delete(ctx, task)
}

func (r *TaskRepository) DeleteAll(ctx context.Context) error {
	return r.store.DeleteAll(ctx)
}

func (r *TaskRepository) GetByID(ctx context.Context, id int) (*models.Task, error) {
	return r.store.GetByID(ctx, id)
}
