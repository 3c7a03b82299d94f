package errutil

import (
	"fmt"

	"github.com/hazelnoot/embedstudio/pkg/log"
)

// HandleDiscordError executes fn and logs any error that occurs as a
// Discord-related error. It returns whatever error fn returns, unmodified.
func HandleDiscordError(operation string, fn func() error) error {
	if fn == nil {
		return fmt.Errorf("nil function provided")
	}

	err := fn()
	if err == nil {
		return nil
	}

	log.ErrorLogger().WithFields(map[string]any{
		"operation": operation,
		"error":     err,
	}).Error("Discord operation failed")

	return err
}

// HandleConfigError executes fn and logs any error that occurs as a
// configuration-related error. It returns a wrapped error with context about
// the operation and path.
func HandleConfigError(operation, path string, fn func() error) error {
	if fn == nil {
		return fmt.Errorf("nil function provided")
	}

	err := fn()
	if err == nil {
		return nil
	}

	log.ErrorLogger().WithFields(map[string]any{
		"operation": operation,
		"path":      path,
		"error":     err,
	}).Error("Config operation failed")

	return fmt.Errorf("config %s %s: %w", operation, path, err)
}
