// Package constants defines shared constants, types, and configuration values
// used throughout menunav.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the engine and the demo host.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	ConfigPathEnvVar   = "MENUNAV_CONFIG"    // Path to a TOML config file
	LogLevelEnvVar     = "MENUNAV_LOG_LEVEL" // Overrides log_level from the config
	WindowWidthEnvVar  = "WINDOW_WIDTH"      // Dev mode window width
	WindowHeightEnvVar = "WINDOW_HEIGHT"     // Dev mode window height
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from keyboards,
// controllers and hardware input devices.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA      // Confirm / press the focused element
	VirtualButtonB      // Back
	VirtualButtonStart  // Pause during gameplay
	VirtualButtonSelect
	VirtualButtonMenu // Escape; pause during gameplay
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the button moves focus or the player.
func (vb VirtualButton) IsDirectional() bool {
	switch vb {
	case VirtualButtonUp, VirtualButtonDown, VirtualButtonLeft, VirtualButtonRight:
		return true
	default:
		return false
	}
}

// Default timing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between hardware input events
	FrameInterval     = 16 * time.Millisecond // Target frame time when VSync is unavailable
)
