package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/app"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli/styles"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/database"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/events"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/logging"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
)

// ErrConfig marks failures to read the config file
var ErrConfig = errors.New("config error")

type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool     // App was created here and is closed by Close
}

// WithApp returns a context carrying an existing App. Commands run with
// such a context use it instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns the App injected with WithApp, or initializes
// a new one from the user's config
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// NewCLI initializes the CLI with database and optional daemon connection
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		// Logging is best effort; commands still work without a log file
		slog.Debug("file logging unavailable", "error", err)
	}

	styles.Init(cfg.ColorScheme)

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	opts := []app.Option{app.WithLogger(slog.Default())}

	if path, err := session.DefaultPath(); err == nil {
		opts = append(opts, app.WithSession(session.NewStore(path)))
	}

	// Try to connect to daemon (optional - silent fallback)
	socketPath := cfg.SocketPath
	if socketPath == "" {
		socketPath, _ = events.DefaultSocketPath()
	}
	if socketPath != "" {
		client := events.NewClient(socketPath, cfg.EventDebounce())
		if err := client.Connect(ctx); err == nil {
			opts = append(opts, app.WithEventPublisher(client))
		} else {
			daemonErr := events.ClassifyDaemonError(err)
			slog.Debug("daemon not available, continuing without live updates",
				"socket_path", socketPath, "message", daemonErr.Message, "hint", daemonErr.Hint)
			_ = client.Close()
		}
	}

	return &CLI{
		App:   app.New(db, cfg, opts...),
		owned: true,
	}, nil
}

// Close cleans up CLI resources. An injected App is left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
