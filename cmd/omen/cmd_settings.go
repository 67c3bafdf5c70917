package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sakif/omen/internal/model"
)

var (
	showCultural      bool
	showPsychological bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show display settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmdContext(cmd), func(a *app) error {
			printSettings(cmd.OutOrStdout(), a.settings.Settings())
			return nil
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Choose which interpretations are shown",
	Long: `Toggles the optional perspectives. The indigenous reading is always shown.

Example:
  omen settings set --cultural=false`,
	Args: cobra.NoArgs,
	RunE: runSettingsSet,
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)

	return withApp(ctx, func(a *app) error {
		s := a.settings.Settings()
		if cmd.Flags().Changed("cultural") {
			s.ShowCultural = showCultural
		}
		if cmd.Flags().Changed("psychological") {
			s.ShowPsychological = showPsychological
		}

		if err := a.settings.Set(ctx, s); err != nil {
			return err
		}
		printSettings(cmd.OutOrStdout(), s)
		return nil
	})
}

func printSettings(w io.Writer, s model.AppSettings) {
	fmt.Fprintf(w, "cultural:      %s\n", onOff(s.ShowCultural))
	fmt.Fprintf(w, "psychological: %s\n", onOff(s.ShowPsychological))
}

func onOff(b bool) string {
	if b {
		return "shown"
	}
	return "hidden"
}
