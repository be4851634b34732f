package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotInstalled is returned when a default-browser change names a catalog
// browser that has no variant present on disk.
var ErrNotInstalled = errors.New("browser is not installed")

// Settings wraps the desktop's xdg-settings interface for reading and
// changing the default web browser.
type Settings struct {
	// Command is the xdg-settings binary, normally just "xdg-settings".
	Command string

	// run is swapped out in tests.
	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

func NewSettings(command string) *Settings {
	return &Settings{
		Command: command,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// DefaultBrowser returns the desktop id of the current default browser.
func (s *Settings) DefaultBrowser(ctx context.Context) (string, error) {
	out, err := s.run(ctx, s.Command, "get", "default-web-browser")
	if err != nil {
		return "", fmt.Errorf("read default browser: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// SetDefaultBrowser makes the given desktop id the default browser.
func (s *Settings) SetDefaultBrowser(ctx context.Context, desktop string) error {
	if _, err := s.run(ctx, s.Command, "set", "default-web-browser", desktop); err != nil {
		return fmt.Errorf("set default browser %s: %w", desktop, err)
	}
	return nil
}

// ResolveDesktop turns a set-default argument into a desktop id. A literal
// "*.desktop" id passes through unchanged; a catalog identifier resolves to
// its installed variant's desktop id, failing if the browser is unknown or
// not installed.
func ResolveDesktop(arg string, exists func(string) bool) (string, error) {
	if strings.HasSuffix(arg, ".desktop") {
		return arg, nil
	}
	entry, err := Lookup(ID(arg))
	if err != nil {
		return "", err
	}
	variant, ok := entry.InstalledVariant(exists)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotInstalled, arg)
	}
	return variant.Desktop, nil
}
