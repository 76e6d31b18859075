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

// RmCmd returns the rm command
func RmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <task_id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task. The most recent deletion can be restored with
'taskmanager undo' until the undo window passes.

Examples:
  taskmanager rm 42
`,
		Args: cobra.ExactArgs(1),
		RunE: runRm,
	}

	addOutputFlags(cmd)

	return cmd
}

func runRm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	cliInstance, release, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()
	application := cliInstance.App

	receipt, err := application.TaskService.Delete(ctx, taskID)
	if errors.Is(err, taskservice.ErrTaskNotFound) {
		return cli.NotFoundNotice(formatter, taskID)
	}
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if err := application.UpdateSession(func(s *session.State) { s.LastDeletion = receipt }); err != nil {
		// The task is gone either way; only undo is lost
		slog.Warn("failed to save deletion receipt", "task_id", taskID, "error", err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"task_id":    taskID,
			"deleted":    taskJSON(receipt.Task, application.Now().Location()),
			"deleted_at": receipt.DeletedAt,
		})
	}

	fmt.Printf("Task %d '%s' deleted (run 'taskmanager undo' to restore)\n", taskID, receipt.Task.Title)
	return nil
}
