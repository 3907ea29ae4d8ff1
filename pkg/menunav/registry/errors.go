package registry

import (
	"errors"
	"fmt"
)

// ErrUnresolvedAction indicates that a label matches no entry of a screen's
// menu. Dispatch treats it as a no-op.
var ErrUnresolvedAction = errors.New("registry: label does not resolve to an action")

// ErrNotInitialized indicates use of a registry that was never constructed.
var ErrNotInitialized = errors.New("registry: not initialized")

// ConfigurationError reports a programming or configuration mistake in the
// menu set: a missing screen, duplicate tags, an unknown label ID. These are
// fatal at startup.
type ConfigurationError struct {
	Op  string // What was being built or looked up (e.g., "load_menus", "definition")
	Err error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("menunav: configuration: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("menunav: configuration: %s", e.Op)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
