package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/database"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Restore stdout even if fn panics
	defer func() {
		os.Stdout = oldStdout
	}()
	fn()

	_ = w.Close()
	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema applied
// by the production migrations
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// InsertTestTask writes task straight to the store, bypassing validation.
// Returns the assigned ID.
func InsertTestTask(t *testing.T, db *sql.DB, task models.Task) int {
	t.Helper()
	created, err := database.NewTaskStore(db, nil, nil).Insert(context.Background(), task)
	if err != nil {
		t.Fatalf("Failed to insert task %q: %v", task.Title, err)
	}
	return created.ID
}
