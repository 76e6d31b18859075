package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/app"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
)

// Run shows the watch screen for application until the user quits or ctx
// is done. Selections and deletions are saved to the session.
func Run(ctx context.Context, application *app.App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := application.Listen(ctx); err != nil {
		// Local changes still show up; only other processes go unseen
		slog.Warn("live updates from other processes unavailable", "error", err)
	}

	p, err := application.Pipeline(ctx)
	if err != nil {
		return err
	}

	model := New(ctx, Deps{
		Service:  application.TaskService,
		Pipeline: p,
		Keys:     application.Config.KeyMappings,
		Colors:   application.Config.ColorScheme,
		Now:      application.Now,
		OnSelection: func(f models.FilterSelection, s models.SortSelection) {
			saveSession(application, func(state *session.State) {
				state.Filter = f
				state.Sort = s
			})
		},
		OnDeletion: func(receipt *task.DeletionReceipt) {
			saveSession(application, func(state *session.State) {
				state.LastDeletion = receipt
			})
		},
	})

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("watch screen failed: %w", err)
	}
	return nil
}

func saveSession(application *app.App, fn func(*session.State)) {
	if err := application.UpdateSession(fn); err != nil {
		slog.Warn("failed to save session", "error", err)
	}
}
