// Package menunav is a menu-navigation engine for frame-stepped applications.
//
// It keeps exactly one screen (main menu, pause menu, settings, gameplay)
// active at a time, runs enter/exit/update callbacks around screen changes,
// turns pointer and button input on menu elements into actions, and resolves
// "back" through a bounded history. Rendering, audio and the gameplay scene are
// supplied by the host through the UI and Audio interfaces.
//
// A host calls Tick once per frame and reports input with NotifyInteraction
// and NotifyButton between ticks. Transitions requested by input are applied
// at the start of the next Tick, so CurrentScreen never changes mid-frame.
//
// NotifyInteraction dispatches at once rather than during the next Tick. A
// press is therefore resolved against the screen that was active when it was
// reported, and several presses in one frame each queue their own transition
// with the last one winning.
package menunav

import (
	"log/slog"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

// Setup applies the logging settings of cfg. Call it once, before New.
// In development mode (ENVIRONMENT=DEV) navigation diagnostics are logged at
// debug level.
func Setup(cfg Config) {
	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	internal.SetRawLogLevel(cfg.LogLevel)

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Setup or the first GetLogger to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
