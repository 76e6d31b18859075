package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/daemon"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/events"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		slog.Warn("file logging unavailable", "error", err)
	}

	socketPath := cfg.SocketPath
	if socketPath == "" {
		socketPath, err = events.DefaultSocketPath()
		if err != nil {
			slog.Error("failed to resolve socket path", "error", err)
			os.Exit(1)
		}
	}

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("taskmanager daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("taskmanager daemon shutting down gracefully")
}
