package task

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli/styles"
	taskservice "github.com/Oshri-Halevi/TaskManagerApp/internal/services/task"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task. Only the title is required.

Examples:
  # Simple task (human-readable output)
  taskmanager add --title="Buy milk"

  # Quiet mode for bash capture
  TASK_ID=$(taskmanager add --title="Call mom" --quiet)

  # Full example with all options
  taskmanager add \
    --title="Write report" \
    --description="Quarterly numbers" \
    --priority=high \
    --due=2026-03-01 \
    --image=file:///home/me/chart.png
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("priority", "normal", "Priority: low, normal, high")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("image", "", "Image reference (URI)")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	cliInstance, release, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()
	loc := cliInstance.App.Now().Location()

	title, _ := cmd.Flags().GetString("title")
	description, err := readDescription(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	priorityName, _ := cmd.Flags().GetString("priority")
	priority, err := cli.ParsePriority(priorityName)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	dueValue, _ := cmd.Flags().GetString("due")
	due, err := cli.ParseDueDate(dueValue, loc)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	image, _ := cmd.Flags().GetString("image")

	task, err := cliInstance.App.TaskService.Create(ctx, taskservice.CreateTaskRequest{
		Title:       title,
		Description: description,
		ImageURI:    cli.ParseImage(image),
		Priority:    &priority,
		DueDate:     due,
	})
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

	fmt.Printf("✓ Task '%s' created successfully (ID: %d)\n", task.Title, task.ID)
	fmt.Printf("  Priority: %s\n", styles.RenderPriority(task.Priority))
	fmt.Printf("  Due: %s\n", cli.FormatDue(*task, loc))
	return nil
}

// readDescription returns --description, reading stdin when it is "-"
func readDescription(cmd *cobra.Command) (string, error) {
	description, _ := cmd.Flags().GetString("description")
	if description != "-" {
		return description, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return string(data), nil
}
