package util

import (
	"os"
	"path/filepath"
	"strings"
)

// Filesystem layout, per application name:
//   - Config: ~/.config/<AppName>
//   - Data:   ~/.local/share/<AppName>
//   - Logs:   ~/.log/<AppName>
//
// These helpers return base directories only; callers create them as needed.

var configuredAppName = "embedstudio"

// SetAppName sets the application name used to derive filesystem paths.
// Empty or whitespace-only names are ignored.
func SetAppName(name string) {
	if n := sanitizeAppNameForPath(name); n != "" {
		configuredAppName = n
	}
}

// AppName returns the configured application name.
func AppName() string { return configuredAppName }

// ConfigDir returns the per-app configuration directory.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", configuredAppName)
}

// DataDir returns the per-app data directory (database lives here).
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", configuredAppName)
}

// LogDir returns the per-app log directory.
func LogDir() string {
	return filepath.Join(homeDir(), ".log", configuredAppName)
}

// HistoryDBPath returns the default path of the finalized-embed database.
func HistoryDBPath() string {
	return filepath.Join(DataDir(), "history.db")
}

// homeDir resolves the user's home directory robustly across Unix-like
// environments.
func homeDir() string {
	if h := strings.TrimSpace(os.Getenv("HOME")); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil && strings.TrimSpace(h) != "" {
		return h
	}
	return "."
}

// sanitizeAppNameForPath normalizes an application name so it is safe as a
// single directory segment.
func sanitizeAppNameForPath(name string) string {
	n := strings.TrimSpace(name)
	n = strings.ReplaceAll(n, "/", "-")
	n = strings.ReplaceAll(n, "\\", "-")
	n = strings.ReplaceAll(n, "\x00", "")
	return strings.TrimSpace(n)
}
