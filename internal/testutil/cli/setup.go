// Package cli holds helpers for command tests. It is separate from testutil
// so service and store tests can use testutil without importing the app.
package cli

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/app"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The app keeps its session in a temp dir so undo and saved selections work
// across commands of one test.
// Note: no daemon connection - event publishing is tested elsewhere
func SetupCLITest(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	store := session.NewStore(filepath.Join(t.TempDir(), "session.yaml"))
	opts = append([]app.Option{app.WithSession(store)}, opts...)

	return db, app.New(db, config.Default(), opts...)
}

// FixedClock returns a clock that always reports ts
func FixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

// CreateTestTask creates a task through the task service and returns it
func CreateTestTask(t *testing.T, a *app.App, req task.CreateTaskRequest) *models.Task {
	t.Helper()
	created, err := a.TaskService.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", req.Title, err)
	}
	return created
}
