package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	taskservice "github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
)

// DoneCmd returns the done command
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Mark a task as done",
		Long: `Mark a task as done, or as not done with --undo.

Examples:
  taskmanager done 42
  taskmanager done 42 --undo
`,
		Args: cobra.ExactArgs(1),
		RunE: runDone,
	}

	cmd.Flags().Bool("undo", false, "Mark the task as not done")
	addOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	undo, _ := cmd.Flags().GetBool("undo")

	cliInstance, release, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()

	task, err := cliInstance.App.TaskService.ToggleDone(ctx, taskID, !undo)
	if errors.Is(err, taskservice.ErrTaskNotFound) {
		return cli.NotFoundNotice(formatter, taskID)
	}
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"task_id": task.ID,
			"is_done": task.IsDone,
		})
	}

	if task.IsDone {
		fmt.Printf("Task %d marked done\n", task.ID)
	} else {
		fmt.Printf("Task %d marked not done\n", task.ID)
	}
	return nil
}
