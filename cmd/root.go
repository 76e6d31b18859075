// Package cmd wires the taskmanager commands into one cobra root
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli/settings"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli/task"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/tui"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// NewRootCmd builds the command tree. Without a subcommand it opens the
// watch screen.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskmanager",
		Short: "TaskManager - tasks with a live filtered view",
		Long: `TaskManager keeps a list of tasks with titles, priorities and due dates.
Lists can be filtered and sorted, and 'watch' shows them live while tasks
change in this or any other taskmanager process.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &cli.OutputFormatter{}
			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return cli.HandleError(formatter, err)
			}
			defer func() { _ = cliInstance.Close() }()
			return cli.HandleError(formatter, tui.Run(cmd.Context(), cliInstance.App))
		},
	}

	rootCmd.AddCommand(task.Commands()...)
	rootCmd.AddCommand(settings.SettingsCmd())

	return rootCmd
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
