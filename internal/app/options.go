package app

import (
	"log/slog"
	"time"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/events"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	session     *session.Store
	now         func() time.Time
}

// WithEventPublisher sets the daemon connection used for cross-process updates
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithSession sets where list selections and the last deletion are kept
func WithSession(store *session.Store) Option {
	return func(cfg *appConfig) {
		cfg.session = store
	}
}

// WithClock replaces time.Now for undo expiry and the today view
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}
