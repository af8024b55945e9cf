// Package xdgdir resolves XDG base directories with the conventional
// home-relative fallbacks.
package xdgdir

import (
	"os"
	"path/filepath"
)

// Data returns the data directory for app, honouring XDG_DATA_HOME and
// falling back to ~/.local/share.
func Data(app string) string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, app)
	}
	return filepath.Join(home(), ".local", "share", app)
}

// Config returns the configuration directory for app, honouring
// XDG_CONFIG_HOME and falling back to ~/.config.
func Config(app string) string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, app)
	}
	return filepath.Join(home(), ".config", app)
}

func home() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}
