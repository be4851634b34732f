package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/biglinux/browser-setup/internal/browser"
	"github.com/biglinux/browser-setup/internal/config"
	"github.com/biglinux/browser-setup/internal/logging"
)

const (
	configFlag   = "config"
	logFileFlag  = "log-file"
	logLevelFlag = "log-level"
)

var (
	configPath string
	logFile    string
	logLevel   string

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "browser-setup",
		Short: "Install and configure web browsers on BigLinux",
		Long: "browser-setup is the command the BigLinux welcome application " +
			"runs (through its privilege broker) to install a browser, report " +
			"which browsers are present, and change the default browser.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}
)

func init() {
	setupFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(getDefaultCmd)
	rootCmd.AddCommand(setDefaultCmd)
	rootCmd.AddCommand(statusCmd)
}

func setupFlags(flags *pflag.FlagSet) {
	flags.StringVar(&configPath, configFlag, "",
		"YAML config file overriding the built-in defaults")
	flags.StringVar(&logFile, logFileFlag, "",
		"transcript log file (overrides the configured path)")
	flags.StringVar(&logLevel, logLevelFlag, "",
		"diagnostic log level (overrides the configured level)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.New(configPath)
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return logging.Init(cfg.LogLevel, cfg.DiagnosticLog)
}

// exitError carries a specific process exit code through cobra, so the
// package manager's own failure code survives to the caller verbatim.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func frontEndCommands() map[browser.FrontEnd][]string {
	return map[browser.FrontEnd][]string{
		browser.Pacman: cfg.PacmanCommand,
		browser.Pamac:  cfg.PamacCommand,
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
