package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli/styles"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/pipeline"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks, open tasks first. A --filter or --sort choice is remembered
for later list and watch sessions.

Examples:
  taskmanager list
  taskmanager list --filter=active --sort=priority
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("filter", "", "Show all, active or done tasks")
	cmd.Flags().String("sort", "", "Sort by date or priority")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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
			slog.Warn("failed to save list selection", "error", err)
		}
	}

	p, err := application.Pipeline(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	sel.applyTo(p)

	return printTaskList(formatter, p.Visible().Get(), p.Progress().Get(), application.Now(),
		map[string]interface{}{
			"filter": p.Filter().String(),
			"sort":   p.Sort().String(),
		},
		fmt.Sprintf("Tasks (filter: %s, sort: %s)", p.Filter(), p.Sort()))
}

// selections holds the --filter and --sort values that were given
type selections struct {
	filter *models.FilterSelection
	sort   *models.SortSelection
}

// parseSelections validates --filter and --sort
func parseSelections(cmd *cobra.Command, formatter *cli.OutputFormatter) (selections, error) {
	var sel selections
	flags := cmd.Flags()

	if flags.Changed("filter") {
		value, _ := flags.GetString("filter")
		f, err := models.ParseFilter(value)
		if err != nil {
			return sel, cli.UsageError(formatter, err.Error(), "Use --filter=all, --filter=active or --filter=done")
		}
		sel.filter = &f
	}
	if flags.Changed("sort") {
		value, _ := flags.GetString("sort")
		s, err := models.ParseSort(value)
		if err != nil {
			return sel, cli.UsageError(formatter, err.Error(), "Use --sort=date or --sort=priority")
		}
		sel.sort = &s
	}
	return sel, nil
}

func (sel selections) changed() bool {
	return sel.filter != nil || sel.sort != nil
}

func (sel selections) save(state *session.State) {
	if sel.filter != nil {
		state.Filter = *sel.filter
	}
	if sel.sort != nil {
		state.Sort = *sel.sort
	}
}

func (sel selections) applyTo(p *pipeline.Pipeline) {
	if sel.filter != nil {
		p.SetFilter(*sel.filter)
	}
	if sel.sort != nil {
		p.SetSort(*sel.sort)
	}
}

// printTaskList writes tasks in the formatter's mode. extra is merged into
// the JSON result; header titles the human output.
func printTaskList(formatter *cli.OutputFormatter, tasks []models.Task, progress pipeline.Progress, now time.Time, extra map[string]interface{}, header string) error {
	if formatter.Quiet {
		for _, task := range tasks {
			fmt.Printf("%d\n", task.ID)
		}
		return nil
	}

	if formatter.JSON {
		fields := map[string]interface{}{
			"tasks":    tasksJSON(tasks, now.Location()),
			"progress": progress,
		}
		for k, v := range extra {
			fields[k] = v
		}
		return formatter.JSONResult(fields)
	}

	fmt.Println(styles.TitleStyle.Render(header))
	if len(tasks) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No tasks"))
		return nil
	}
	for _, task := range tasks {
		fmt.Println(styles.RenderTaskLine(task, now))
	}
	fmt.Println()
	fmt.Println(styles.RenderProgress(progress, 20))
	return nil
}
