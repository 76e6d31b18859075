package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/database"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/events"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/pipeline"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/repository"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	Config *config.Config

	// Event system for live updates
	Bus         *events.Bus
	eventClient events.EventPublisher

	// Persistence
	Store *database.SQLiteStore
	Repo  *repository.TaskRepository

	// Service layer (business logic)
	TaskService task.Service

	Session *session.Store
	Logger  *slog.Logger
	now     func() time.Time
}

// New creates a new App with all services initialized.
// A nil cfg means config.Default().
func New(db *sql.DB, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	options := appConfig{now: time.Now}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	bus := events.NewBus()
	store := database.NewTaskStore(db, bus, options.eventClient)
	repo := repository.New(store)

	return &App{
		db:          db,
		Config:      cfg,
		Bus:         bus,
		eventClient: options.eventClient,
		Store:       store,
		Repo:        repo,
		TaskService: task.NewService(repo,
			task.WithUndoWindow(cfg.UndoWindow),
			task.WithClock(options.now),
		),
		Session: options.session,
		Logger:  options.logger,
		now:     options.now,
	}
}

// Now returns the current time from the app clock
func (a *App) Now() time.Time {
	return a.now()
}

// SessionState returns the saved selections, or the configured defaults
// when there is no session store or file.
func (a *App) SessionState() session.State {
	fallback := session.State{Filter: a.Config.DefaultFilter, Sort: a.Config.DefaultSort}
	if a.Session == nil {
		return fallback
	}

	state, err := a.Session.Load(fallback)
	if err != nil {
		a.Logger.Warn("ignoring unreadable session", "path", a.Session.Path(), "error", err)
		return fallback
	}
	return state
}

// UpdateSession applies fn to the saved state. Without a session store it
// is a no-op.
func (a *App) UpdateSession(fn func(*session.State)) error {
	if a.Session == nil {
		return nil
	}
	_, err := a.Session.Update(session.State{Filter: a.Config.DefaultFilter, Sort: a.Config.DefaultSort}, fn)
	return err
}

// Pipeline opens the live task set and wraps it in a pipeline using the
// saved selections. Both stop when ctx is done.
func (a *App) Pipeline(ctx context.Context) (*pipeline.Pipeline, error) {
	live, err := a.TaskService.List(ctx)
	if err != nil {
		return nil, err
	}

	state := a.SessionState()
	p := pipeline.New(live,
		pipeline.WithFilter(state.Filter),
		pipeline.WithSort(state.Sort),
		pipeline.WithClock(a.now),
	)

	go func() {
		<-ctx.Done()
		p.Close()
	}()
	return p, nil
}

// Listen bridges daemon events onto the local bus so live queries see
// changes made by other processes. Without a daemon connection it does nothing.
func (a *App) Listen(ctx context.Context) error {
	if a.eventClient == nil {
		return nil
	}
	if err := events.Bridge(ctx, a.eventClient, a.Bus); err != nil {
		return fmt.Errorf("failed to listen for daemon events: %w", err)
	}
	return nil
}

// Live reports whether a daemon connection is configured
func (a *App) Live() bool {
	return a.eventClient != nil
}

// DB returns the underlying database handle
func (a *App) DB() *sql.DB {
	return a.db
}

// Close releases the event system and the database
func (a *App) Close() error {
	if a.eventClient != nil {
		if err := a.eventClient.Close(); err != nil {
			a.Logger.Debug("failed to close event client", "error", err)
		}
	}
	_ = a.Bus.Close()

	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
