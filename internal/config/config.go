package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const configFilename = "config.yml"

// Config collects the tool's few tunables. The browser catalog itself is
// compiled in; configuration only covers paths and command prefixes.
type Config struct {
	// LogFile is the transcript sink every install invocation appends to.
	LogFile string `yaml:"log_file"`
	// DiagnosticLog is where the tool's own diagnostic logging goes;
	// empty means stderr.
	DiagnosticLog string `yaml:"diagnostic_log"`
	LogLevel      string `yaml:"log_level"`
	// PacmanCommand and PamacCommand are argv prefixes; the package name
	// is appended when installing.
	PacmanCommand      []string `yaml:"pacman_command"`
	PamacCommand       []string `yaml:"pamac_command"`
	XDGSettingsCommand string   `yaml:"xdg_settings_command"`
}

// New loads the embedded default configuration, then overlays the YAML file
// at path if one is given. Keys missing from the file keep their defaults.
func New(path string) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal([]byte(MustGetResource(configFilename)), config); err != nil {
		return nil, fmt.Errorf("parse built-in config: %w", err)
	}
	if path == "" {
		return config, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}
