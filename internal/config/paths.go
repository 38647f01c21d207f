// Package config reads and writes the two small TOML files behind
// sheetscout: the search-engine registry and the general settings. A broken
// or missing file never blocks startup; built-in defaults step in.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the per-user config directory for sheetscout.
// Follows XDG Base Directory spec on Linux, platform conventions elsewhere.
func Dir() string {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, "Library", "Application Support", "sheetscout")
	case "windows":
		configDir = filepath.Join(os.Getenv("APPDATA"), "sheetscout")
	default: // Linux and others - follow XDG
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDir = filepath.Join(xdg, "sheetscout")
		} else {
			home, _ := os.UserHomeDir()
			configDir = filepath.Join(home, ".config", "sheetscout")
		}
	}

	return configDir
}

// ConfigPath returns the general settings file path inside dir.
func ConfigPath(dir string) string { return filepath.Join(dir, "config.toml") }

// EnginesPath returns the engine registry file path inside dir.
func EnginesPath(dir string) string { return filepath.Join(dir, "engines.toml") }

// LogPath returns the session log file path inside dir. The TUI owns the
// terminal, so logs go to a file.
func LogPath(dir string) string { return filepath.Join(dir, "sheetscout.log") }
