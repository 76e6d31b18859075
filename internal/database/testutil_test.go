package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tasks.db")
}

// setupTestStore creates a store over a fresh in-memory database
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	return NewTaskStore(setupTestDB(t), nil, nil)
}

// ============================================================================
// DATA HELPERS
// ============================================================================

func ptr[T any](v T) *T {
	return &v
}

// insertTestTask inserts a task and fails the test on error
func insertTestTask(t *testing.T, store *SQLiteStore, task models.Task) *models.Task {
	t.Helper()
	created, err := store.Insert(context.Background(), task)
	if err != nil {
		t.Fatalf("Failed to insert task %q: %v", task.Title, err)
	}
	return created
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
