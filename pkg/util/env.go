package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvWithLocalBinFallback ensures the specified environment variable is
// present. It always attempts to load a single fallback file located at
// $HOME/.local/bin/.env to populate any variables that are currently missing
// from the environment (without overwriting already-set variables), then reads
// and returns the requested variable.
//
// Behavior:
//   - Does NOT load .env from the current working directory.
//   - godotenv.Load never overrides variables already set in the process.
//
// Returns a descriptive error when the variable remains unset after the
// fallback attempt so callers can decide how to log or handle it.
func LoadEnvWithLocalBinFallback(tokenEnvName string) (string, error) {
	home, homeErr := os.UserHomeDir()
	var envPath string
	if homeErr == nil && home != "" {
		envPath = filepath.Join(home, ".local", "bin", ".env")
		if info, statErr := os.Stat(envPath); statErr == nil && !info.IsDir() {
			_ = godotenv.Load(envPath)
		}
	}

	if v := os.Getenv(tokenEnvName); v != "" {
		return v, nil
	}

	if envPath == "" {
		return "", fmt.Errorf("environment variable %q not set and home directory unresolved", tokenEnvName)
	}
	return "", fmt.Errorf("environment variable %q not set; attempted to load fallback file %s", tokenEnvName, envPath)
}

// EnvBool reports whether an environment variable is set to a truthy value
// ("1", "true", "yes", case-insensitive on the first letter).
func EnvBool(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "TRUE", "True", "yes", "YES", "Yes":
		return true
	}
	return false
}
