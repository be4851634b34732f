package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biglinux/browser-setup/internal/browser"
)

var getDefaultCmd = &cobra.Command{
	Use:   "get-default",
	Short: "Print the desktop id of the current default browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := browser.NewSettings(cfg.XDGSettingsCommand)
		desktop, err := settings.DefaultBrowser(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), desktop)
		return nil
	},
}

var setDefaultCmd = &cobra.Command{
	Use:   "set-default <browser|desktop-id>",
	Short: "Make a browser the default",
	Long: "Sets the default web browser. The argument is either a known " +
		"browser name, resolved to its installed desktop entry, or a " +
		"literal *.desktop id passed through unchanged.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desktop, err := browser.ResolveDesktop(args[0], fileExists)
		if err != nil {
			return err
		}
		settings := browser.NewSettings(cfg.XDGSettingsCommand)
		return settings.SetDefaultBrowser(cmd.Context(), desktop)
	},
}
