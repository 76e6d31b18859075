package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli/styles"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show task details",
		Long:  "Display all details of a task, rendering the description as markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	// Unlike edit and rm, a missing task is an error here
	task, err := application.TaskService.GetByID(ctx, taskID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"task": taskJSON(*task, application.Now().Location())})
	}

	fmt.Println(renderTaskCard(*task, application.Now()))
	return nil
}

func renderTaskCard(task models.Task, now time.Time) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.Title)))
	content.WriteString("\n\n")

	status := styles.WarningStyle.Render("OPEN")
	if task.IsDone {
		status = styles.SuccessStyle.Render("DONE")
	} else if styles.Overdue(task, now) {
		status = styles.OverdueStyle.Render("OVERDUE")
	}

	metaLine := fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.LabelStyle.Render("Status:"), status,
		styles.LabelStyle.Render("Priority:"), styles.RenderPriority(task.Priority),
		styles.LabelStyle.Render("Due:"), styles.ValueStyle.Render(cli.FormatDue(task, now.Location())))
	content.WriteString(metaLine)
	content.WriteString("\n")

	if uri := task.Image(); uri != "" {
		content.WriteString(styles.LabelStyle.Render("Image:") + " " + styles.ValueStyle.Render(uri) + "\n")
	}

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(cli.RenderDescription(task.Description, styles.CardWidth-6))

	return styles.RenderCard(content.String())
}
