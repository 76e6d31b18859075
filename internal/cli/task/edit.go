package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	taskservice "github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
)

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task_id>",
		Short: "Edit a task",
		Long: `Replace the fields of a task. Fields without a flag keep their
current value; completion state is never changed by edit.

Examples:
  # Rename a task
  taskmanager edit 12 --title="Buy oat milk"

  # Remove the due date and image
  taskmanager edit 12 --due=none --image=none
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("priority", "", "Priority: low, normal, high")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD, or none)")
	cmd.Flags().String("image", "", "Image reference (URI, or none)")
	addOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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
	loc := cliInstance.App.Now().Location()

	current, err := cliInstance.App.TaskService.GetByID(ctx, taskID)
	if errors.Is(err, taskservice.ErrTaskNotFound) {
		return cli.NotFoundNotice(formatter, taskID)
	}
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	req := taskservice.EditTaskRequest{
		TaskID:      current.ID,
		Title:       current.Title,
		Description: current.Description,
		ImageURI:    current.ImageURI,
		Priority:    current.Priority,
		DueDate:     current.DueDate,
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		req.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		if req.Description, err = readDescription(cmd); err != nil {
			return cli.HandleError(formatter, err)
		}
	}
	if flags.Changed("priority") {
		name, _ := flags.GetString("priority")
		if req.Priority, err = cli.ParsePriority(name); err != nil {
			return cli.HandleError(formatter, err)
		}
	}
	if flags.Changed("due") {
		value, _ := flags.GetString("due")
		if req.DueDate, err = cli.ParseDueDate(value, loc); err != nil {
			return cli.HandleError(formatter, err)
		}
	}
	if flags.Changed("image") {
		value, _ := flags.GetString("image")
		req.ImageURI = cli.ParseImage(value)
	}

	task, err := cliInstance.App.TaskService.Edit(ctx, req)
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
		return formatter.JSONResult(map[string]interface{}{"task": taskJSON(*task, loc)})
	}

	fmt.Printf("✓ Task %d updated\n", task.ID)
	return nil
}
