package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/observable"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/pipeline"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/tui"
)

// runWatchScreen is the interactive screen; replaced in tests
var runWatchScreen = tui.Run

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live task list",
		Long: `Show the task list and keep it current while tasks change, including
changes made by other taskmanager processes when the daemon runs.

With --json every change is written as one JSON object per line; with
--quiet as one line of task IDs. Both stream until interrupted.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}

	cmd.Flags().String("filter", "", "Show all, active or done tasks")
	cmd.Flags().String("sort", "", "Sort by date or priority")
	addOutputFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	formatter := newFormatter(cmd)

	sel, err := parseSelections(cmd, formatter)
	if err != nil {
		return err
	}

	cliInstance, release, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()
	application := cliInstance.App

	if sel.changed() {
		if err := application.UpdateSession(sel.save); err != nil {
			return cli.HandleError(formatter, err)
		}
	}

	if !formatter.JSON && !formatter.Quiet {
		return cli.HandleError(formatter, runWatchScreen(ctx, application))
	}

	if err := application.Listen(ctx); err != nil {
		return cli.HandleError(formatter, err)
	}
	p, err := application.Pipeline(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	sel.applyTo(p)

	err = streamVisible(ctx, p, formatter, application.Now().Location())
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return cli.HandleError(formatter, err)
}

// streamVisible writes the visible list every time it changes until ctx is done
func streamVisible(ctx context.Context, p *pipeline.Pipeline, formatter *cli.OutputFormatter, loc *time.Location) error {
	updates := observable.Channel(ctx, p.Visible())
	encoder := json.NewEncoder(os.Stdout)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tasks := <-updates:
			if formatter.Quiet {
				fmt.Println(joinIDs(tasks))
				continue
			}
			if err := encoder.Encode(map[string]interface{}{
				"success":  true,
				"filter":   p.Filter().String(),
				"sort":     p.Sort().String(),
				"tasks":    tasksJSON(tasks, loc),
				"progress": pipeline.ProgressOf(tasks),
			}); err != nil {
				return fmt.Errorf("failed to write update: %w", err)
			}
		}
	}
}

func joinIDs(tasks []models.Task) string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, strconv.Itoa(task.ID))
	}
	return strings.Join(ids, " ")
}
