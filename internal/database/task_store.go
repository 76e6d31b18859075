package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/events"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

const taskColumns = `id, title, description, is_done, image_uri, priority, due_date`

// SQLiteStore persists tasks in SQLite and announces every change on an event bus.
// No business logic, no validation - just database operations.
type SQLiteStore struct {
	db     *sql.DB
	bus    *events.Bus
	remote events.EventPublisher // optional daemon connection

	afterInitialLoad func() // test hook, runs between List's initial query and its first delivery
}

// NewTaskStore creates a store over db. A nil bus gets a private one;
// remote may be nil when no daemon is running.
func NewTaskStore(db *sql.DB, bus *events.Bus, remote events.EventPublisher) *SQLiteStore {
	if bus == nil {
		bus = events.NewBus()
	}
	return &SQLiteStore{db: db, bus: bus, remote: remote}
}

// Bus returns the bus the store publishes changes on
func (s *SQLiteStore) Bus() *events.Bus {
	return s.bus
}

// ============================================================================
// CRUD OPERATIONS
// ============================================================================

// Insert stores a new task and returns it with the assigned id
func (s *SQLiteStore) Insert(ctx context.Context, task models.Task) (*models.Task, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, is_done, image_uri, priority, due_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, task.IsDone,
		ptrToNullString(task.ImageURI), task.Priority, ptrToNullInt64(task.DueDate),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted task id: %w", err)
	}

	created := task.Clone()
	created.ID = int(id)

	s.notify(events.OpInsert, created.ID)
	return &created, nil
}

// Update replaces all mutable fields of an existing task
func (s *SQLiteStore) Update(ctx context.Context, task models.Task) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, is_done = ?, image_uri = ?, priority = ?, due_date = ?
		 WHERE id = ?`,
		task.Title, task.Description, task.IsDone,
		ptrToNullString(task.ImageURI), task.Priority, ptrToNullInt64(task.DueDate),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}

	if err := requireRow(result, task.ID); err != nil {
		return err
	}

	s.notify(events.OpUpdate, task.ID)
	return nil
}

// Delete removes a task
func (s *SQLiteStore) Delete(ctx context.Context, task models.Task) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", task.ID)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", task.ID, err)
	}

	if err := requireRow(result, task.ID); err != nil {
		return err
	}

	s.notify(events.OpDelete, task.ID)
	return nil
}

// DeleteAll removes every task
func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to delete all tasks: %w", err)
	}

	s.notify(events.OpDeleteAll, 0)
	return nil
}

// GetByID retrieves a task by id
func (s *SQLiteStore) GetByID(ctx context.Context, id int) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? LIMIT 1`, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return &task, nil
}

// All retrieves every task ordered by insertion, newest first
func (s *SQLiteStore) All(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Count returns the number of stored tasks
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// ============================================================================
// HELPERS
// ============================================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (models.Task, error) {
	var (
		task     models.Task
		imageURI sql.NullString
		dueDate  sql.NullInt64
	)
	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.IsDone,
		&imageURI, &task.Priority, &dueDate,
	)
	if err != nil {
		return models.Task{}, err
	}
	task.ImageURI = nullStringToPtr(imageURI)
	task.DueDate = nullInt64ToPtr(dueDate)
	return task, nil
}

// requireRow maps a zero-row mutation to models.ErrTaskNotFound
func requireRow(result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for task %d: %w", id, err)
	}
	if n == 0 {
		return models.ErrTaskNotFound
	}
	return nil
}

// notify announces a change locally and, when connected, to the daemon.
// Delivery failures are logged, never returned (fire-and-forget).
func (s *SQLiteStore) notify(op events.Op, taskID int) {
	event := events.Event{
		Type:      events.EventTasksChanged,
		Op:        op,
		TaskID:    taskID,
		Origin:    s.bus.Origin(),
		Timestamp: time.Now(),
	}

	if err := s.bus.Publish(event); err != nil {
		slog.Debug("local change event not delivered", "op", op, "task_id", taskID, "error", err)
	}

	if s.remote != nil {
		if err := events.PublishWithRetry(s.remote, event, events.DefaultRetry); err != nil {
			slog.Warn("failed to send change event to daemon", "op", op, "task_id", taskID, "error", err)
		}
	}
}
