// Package settings holds the settings command: stored user preferences
package settings

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli/styles"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
)

// SettingsCmd returns the settings command
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Long: `Show the stored preferences, or change them with flags.

Examples:
  taskmanager settings
  taskmanager settings --dark-mode --language=iw --font-size=large
  taskmanager settings --dark-mode=false
`,
		Args: cobra.NoArgs,
		RunE: runSettings,
	}

	cmd.Flags().Bool("dark-mode", false, "Use the dark theme")
	cmd.Flags().String("language", "", fmt.Sprintf("Interface language %v", config.Languages))
	cmd.Flags().String("font-size", "", fmt.Sprintf("Font size %v", config.FontSizes))
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output")

	return cmd
}

func runSettings(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()
	cfg := cliInstance.App.Config

	prefs := cfg.Preferences
	flags := cmd.Flags()
	changed := false
	if flags.Changed("dark-mode") {
		prefs.DarkMode, _ = flags.GetBool("dark-mode")
		changed = true
	}
	if flags.Changed("language") {
		prefs.Language, _ = flags.GetString("language")
		changed = true
	}
	if flags.Changed("font-size") {
		prefs.FontSize, _ = flags.GetString("font-size")
		changed = true
	}

	if changed {
		if err := prefs.Validate(); err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return cli.Exit(cli.ExitValidation, err)
		}
		if err := config.SavePreferences(prefs); err != nil {
			return cli.HandleError(formatter, fmt.Errorf("failed to save preferences: %w", err))
		}
		cfg.Preferences = prefs
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]interface{}{
			"updated": changed,
			"preferences": map[string]interface{}{
				"dark_mode": prefs.DarkMode,
				"language":  prefs.Language,
				"font_size": prefs.FontSize,
			},
		})
	}

	if changed {
		fmt.Println(styles.SuccessStyle.Render("✓ Preferences saved"))
	}
	fmt.Printf("%s %t\n", styles.LabelStyle.Render("Dark mode:"), prefs.DarkMode)
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Language:"), prefs.Language)
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Font size:"), prefs.FontSize)
	return nil
}
