package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biglinux/browser-setup/internal/browser"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List every supported browser and whether it is installed",
	Long: "Prints one tab-separated line per supported browser: name, " +
		"\"installed\" or \"available\", and the detected desktop entry " +
		"(\"-\" when not installed).",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, state := range browser.States(fileExists) {
			installed := "available"
			desktop := "-"
			if state.Installed {
				installed = "installed"
				desktop = state.Desktop
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", state.ID, installed, desktop)
		}
		return nil
	},
}
