package menunav

import (
	"github.com/BrandonKowalski/menunav/pkg/menunav/registry"
	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

// Sentinel errors for the recoverable per-frame conditions. Neither interrupts
// Tick; both are logged.
var (
	// ErrEmptyHistory indicates a back navigation with nothing to go back to.
	// The configured fallback screen is used.
	ErrEmptyHistory = router.ErrEmptyHistory

	// ErrUnresolvedAction indicates a pressed element whose label is not bound
	// to any action on the active screen. The press is a no-op.
	ErrUnresolvedAction = registry.ErrUnresolvedAction

	// ErrNotInitialized indicates use of a registry that was never built.
	ErrNotInitialized = registry.ErrNotInitialized
)

// ConfigurationError reports a mistake in the menu set or engine
// configuration. These errors are fatal at startup.
type ConfigurationError = registry.ConfigurationError

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op string, err error) *ConfigurationError {
	return registry.NewConfigurationError(op, err)
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	return registry.IsConfigurationError(err)
}
