// Package task holds the task commands of the taskmanager CLI
package task

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
)

// Commands returns every task command for the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		EditCmd(),
		DoneCmd(),
		RmCmd(),
		UndoCmd(),
		ClearCmd(),
		ListCmd(),
		TodayCmd(),
		ShowCmd(),
		WatchCmd(),
	}
}

// addOutputFlags registers the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

func newFormatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// openCLI returns the app for cmd and a func releasing it
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, cli.HandleError(formatter, err)
	}
	release := func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}
	return cliInstance, release, nil
}

// taskJSON is the JSON shape of a task in command output
func taskJSON(task models.Task, loc *time.Location) map[string]interface{} {
	out := map[string]interface{}{
		"id":          task.ID,
		"title":       task.Title,
		"description": task.Description,
		"is_done":     task.IsDone,
		"priority":    models.PriorityByID(task.Priority).Description,
		"image_uri":   nil,
		"due_date":    nil,
	}
	if task.ImageURI != nil {
		out["image_uri"] = *task.ImageURI
	}
	if task.HasDueDate() {
		out["due_date"] = task.Due(loc).Format(models.DateLayout)
	}
	return out
}

func tasksJSON(tasks []models.Task, loc *time.Location) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskJSON(task, loc))
	}
	return out
}
