package cmd

import (
	"github.com/spf13/cobra"

	"github.com/biglinux/browser-setup/internal/browser"
)

var installCmd = &cobra.Command{
	Use:   "install <browser>",
	Short: "Install a browser through the system package manager",
	Long: "Installs the given browser, mirroring the package manager's " +
		"output live to stdout and to the transcript log. Lifecycle is " +
		"signalled with STATUS: lines; the exit code is the package " +
		"manager's own, or 1 for an unknown browser.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sink, err := browser.NewFileSink(cfg.LogFile)
		if err != nil {
			return err
		}
		defer sink.Close()

		installer := browser.NewInstaller(cmd.OutOrStdout(), sink, frontEndCommands())
		if code := installer.Install(cmd.Context(), browser.ID(args[0])); code != 0 {
			return &exitError{code: code}
		}
		return nil
	},
}
