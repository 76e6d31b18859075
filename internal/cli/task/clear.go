package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli/huhforms"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/session"
)

// confirmClear asks the user before deleting everything; replaced in tests
var confirmClear = huhforms.ConfirmDeleteAll

// ClearCmd returns the clear command
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks",
		Long: `Delete every task. This cannot be undone, so the command asks for
confirmation unless --yes is given. JSON and quiet modes never prompt and
require --yes.`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	addOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes && (formatter.JSON || formatter.Quiet) {
		return cli.UsageError(formatter,
			"refusing to delete all tasks without confirmation",
			"Pass --yes to delete all tasks non-interactively")
	}

	cliInstance, release, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer release()
	application := cliInstance.App

	count, err := application.Store.Count(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if !yes {
		confirmed, err := confirmClear(count, application.Config.ColorScheme)
		if err != nil {
			return cli.HandleError(formatter, fmt.Errorf("confirmation failed: %w", err))
		}
		if !confirmed {
			fmt.Println("Cancelled, no tasks deleted")
			return nil
		}
	}

	if err := application.TaskService.DeleteAll(ctx); err != nil {
		return cli.HandleError(formatter, err)
	}

	// Nothing deleted before a clear can come back after it
	if err := application.UpdateSession(func(s *session.State) { s.LastDeletion = nil }); err != nil {
		slog.Warn("failed to clear deletion receipt", "error", err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", count)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{"deleted": count})
	}

	fmt.Printf("Deleted %d tasks\n", count)
	return nil
}
