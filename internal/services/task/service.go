package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/database"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetByID(ctx context.Context, taskID int) (*models.Task, error)
	List(ctx context.Context) (*database.LiveQuery, error)

	// Write operations
	Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	Edit(ctx context.Context, req EditTaskRequest) (*models.Task, error)
	ToggleDone(ctx context.Context, taskID int, done bool) (*models.Task, error)
	SetDone(ctx context.Context, task models.Task, done bool) (*models.Task, error)

	// Removal
	Delete(ctx context.Context, taskID int) (*DeletionReceipt, error)
	DeleteTask(ctx context.Context, task models.Task) (*DeletionReceipt, error)
	Undo(ctx context.Context, receipt DeletionReceipt) (*models.Task, error)
	DeleteAll(ctx context.Context) error
}

// Repository is the persistence the service needs.
// *repository.TaskRepository satisfies it.
type Repository interface {
	List(ctx context.Context) (*database.LiveQuery, error)
	Insert(ctx context.Context, task models.Task) (*models.Task, error)
	Update(ctx context.Context, task models.Task) error
	Delete(ctx context.Context, task models.Task) error
	DeleteAll(ctx context.Context) error
	GetByID(ctx context.Context, id int) (*models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	ImageURI    *string
	Priority    *int // Optional: nil means models.DefaultPriority
	DueDate     *int64
}

// EditTaskRequest replaces every mutable field of a task.
// Completion state is kept as stored.
type EditTaskRequest struct {
	TaskID      int
	Title       string
	Description string
	ImageURI    *string
	Priority    int
	DueDate     *int64
}

// DeletionReceipt captures a deleted task so it can be restored
type DeletionReceipt struct {
	Task      models.Task `yaml:"task" json:"task"`
	DeletedAt time.Time   `yaml:"deleted_at" json:"deleted_at"`
}

// Option configures the service
type Option func(*service)

// WithUndoWindow limits how long a deletion receipt stays valid.
// Zero means receipts never expire.
func WithUndoWindow(d time.Duration) Option {
	return func(s *service) { s.undoWindow = d }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// service implements Service interface
type service struct {
	repo       Repository
	undoWindow time.Duration
	now        func() time.Time
}

// NewService creates a new task service
func NewService(repo Repository, opts ...Option) Service {
	s := &service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Detached reports whether err only means the caller went away before the
// call finished. Such results are discarded without surfacing an error.
func Detached(err error) bool {
	return errors.Is(err, context.Canceled)
}

// Create handles task creation with validation and defaults
func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	priority := models.DefaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}

	if err := validateFields(req.Title, priority); err != nil {
		return nil, err
	}

	task, err := s.repo.Insert(ctx, models.Task{
		Title:       req.Title,
		Description: req.Description,
		ImageURI:    req.ImageURI,
		Priority:    priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Debug("task created", "task_id", task.ID, "priority", priority)
	return task, nil
}

// Edit replaces the fields of an existing task
func (s *service) Edit(ctx context.Context, req EditTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if err := validateFields(req.Title, req.Priority); err != nil {
		return nil, err
	}

	current, err := s.GetByID(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	updated := models.Task{
		ID:          current.ID,
		Title:       req.Title,
		Description: req.Description,
		IsDone:      current.IsDone,
		ImageURI:    req.ImageURI,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &updated, nil
}

// ToggleDone loads a task and sets its completion flag
func (s *service) ToggleDone(ctx context.Context, taskID int, done bool) (*models.Task, error) {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.SetDone(ctx, *task, done)
}

// SetDone writes task back with its completion flag replaced
func (s *service) SetDone(ctx context.Context, task models.Task, done bool) (*models.Task, error) {
	if task.ID <= 0 {
		return nil, ErrInvalidTaskID
	}

	updated := task.Clone()
	updated.IsDone = done
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &updated, nil
}

// Delete loads a task by id and deletes it
func (s *service) Delete(ctx context.Context, taskID int) (*DeletionReceipt, error) {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.DeleteTask(ctx, *task)
}

// DeleteTask deletes task and returns a receipt holding its field values
func (s *service) DeleteTask(ctx context.Context, task models.Task) (*DeletionReceipt, error) {
	if task.ID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if err := s.repo.Delete(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return &DeletionReceipt{Task: task.Clone(), DeletedAt: s.now()}, nil
}

// Undo re-inserts the deleted task's values. The store assigns a new id.
func (s *service) Undo(ctx context.Context, receipt DeletionReceipt) (*models.Task, error) {
	if s.undoWindow > 0 && s.now().Sub(receipt.DeletedAt) > s.undoWindow {
		return nil, ErrUndoExpired
	}

	restored, err := s.repo.Insert(ctx, receipt.Task.Fields())
	if err != nil {
		return nil, fmt.Errorf("failed to restore task: %w", err)
	}

	slog.Debug("task restored", "old_id", receipt.Task.ID, "new_id", restored.ID)
	return restored, nil
}

// DeleteAll removes every task. It cannot be undone.
func (s *service) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete all tasks: %w", err)
	}
	return nil
}

// GetByID retrieves a single task
func (s *service) GetByID(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// List returns the live task set
func (s *service) List(ctx context.Context) (*database.LiveQuery, error) {
	live, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return live, nil
}

// ============================================================================
// VALIDATION
// ============================================================================

func validateFields(title string, priority int) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if !models.ValidPriority(priority) {
		return ErrInvalidPriority
	}
	return nil
}
