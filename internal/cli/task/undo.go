package task

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	taskservice "github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
)

// UndoCmd returns the undo command
func UndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Restore the most recently deleted task",
		Long: `Restore the task removed by the last 'taskmanager rm'. The task gets a
new ID. Restoring is only possible within the configured undo window.`,
		Args: cobra.NoArgs,
		RunE: runUndo,
	}

	addOutputFlags(cmd)

	return cmd
}

func runUndo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	cliInstance, release, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()
	application := cliInstance.App

	receipt := application.SessionState().LastDeletion
	if receipt == nil {
		return cli.HandleError(formatter, taskservice.ErrNothingToUndo)
	}

	restored, err := application.TaskService.Undo(ctx, *receipt)
	if err != nil && !errors.Is(err, taskservice.ErrUndoExpired) {
		return cli.HandleError(formatter, err)
	}

	// A receipt is used at most once; expired ones are dropped as well
	if saveErr := application.UpdateSession(func(s *session.State) { s.LastDeletion = nil }); saveErr != nil {
		slog.Warn("failed to clear deletion receipt", "error", saveErr)
	}
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", restored.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"old_id": receipt.Task.ID,
			"task":   taskJSON(*restored, application.Now().Location()),
		})
	}

	fmt.Printf("✓ Task '%s' restored (ID: %d)\n", restored.Title, restored.ID)
	return nil
}
