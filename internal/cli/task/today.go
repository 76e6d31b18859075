package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/models"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/pipeline"
)

// TodayCmd returns the today command
func TodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "List tasks due today",
		Long: `List the tasks due today, open tasks first, with today's progress.
The list and watch selections do not apply.`,
		Args: cobra.NoArgs,
		RunE: runToday,
	}

	addOutputFlags(cmd)

	return cmd
}

func runToday(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	formatter := newFormatter(cmd)

	cliInstance, release, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()
	application := cliInstance.App

	p, err := application.Pipeline(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	now := application.Now()
	today := p.Today(now)
	return printTaskList(formatter, today, pipeline.ProgressOf(today), now,
		map[string]interface{}{"date": now.Format(models.DateLayout)},
		fmt.Sprintf("Today (%s)", now.Format(models.DateLayout)))
}
