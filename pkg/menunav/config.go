package menunav

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

// Config holds the engine settings and the host settings the demo reads from
// the same file.
type Config struct {
	StartScreen     router.Screen  `toml:"start_screen"`     // Entered on the first Tick
	FallbackScreen  router.Screen  `toml:"fallback_screen"`  // Target of "back" with an empty history
	GameplayScreen  router.Screen  `toml:"gameplay_screen"`  // Entering it clears the history
	HistoryCapacity int            `toml:"history_capacity"` // Screens remembered for back navigation
	LogLevel        string         `toml:"log_level"`        // debug, info, warn or error
	LogPath         string         `toml:"log_path"`         // Empty logs to stdout only
	ClickCue        Cue            `toml:"click_cue"`        // Played on every press
	EnterCues       map[string]Cue `toml:"enter_cues"`       // Screen name to cue played on entry
	MenusPath       string         `toml:"menus_path"`       // Custom menu layout; empty uses the built-in one
	FontPath        string         `toml:"font_path"`
	InputDevice     string         `toml:"input_device"` // evdev device for hardware buttons
	Window          WindowConfig   `toml:"window"`
}

// WindowConfig configures the host window.
type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		StartScreen:     router.ScreenMainMenu,
		FallbackScreen:  router.ScreenMainMenu,
		GameplayScreen:  router.ScreenInGame,
		HistoryCapacity: router.DefaultHistoryCapacity,
		LogLevel:        "info",
		ClickCue:        "audio/sounds/click.mp3",
		EnterCues: map[string]Cue{
			router.ScreenMainMenu.String(): "audio/music/Sad_Italian_Song.mp3",
		},
		FontPath: "fonts/FiraSans-Bold.ttf",
		Window: WindowConfig{
			Title:  "menunav",
			Width:  1024,
			Height: 768,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, NewConfigurationError("load_config", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, NewConfigurationError("load_config", fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", ")))
	}
	return cfg, cfg.Validate()
}

// LoadConfigFromEnv loads the file named by MENUNAV_CONFIG, or the defaults
// when it is unset, then applies environment overrides.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if path := os.Getenv(constants.ConfigPathEnvVar); path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()
	return cfg, cfg.Validate()
}

// ApplyEnv applies environment variable overrides.
func (c *Config) ApplyEnv() {
	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		c.LogLevel = level
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	for name, s := range map[string]router.Screen{
		"start_screen":    c.StartScreen,
		"fallback_screen": c.FallbackScreen,
		"gameplay_screen": c.GameplayScreen,
	} {
		if !s.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown screen %d", name, int(s)))
		}
	}
	if c.HistoryCapacity < 1 {
		errs = append(errs, fmt.Errorf("history_capacity must be at least 1, got %d", c.HistoryCapacity))
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}
	for name := range c.EnterCues {
		if _, err := router.ParseScreen(name); err != nil {
			errs = append(errs, fmt.Errorf("enter_cues: %w", err))
		}
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window: negative size %dx%d", c.Window.Width, c.Window.Height))
	}
	if len(errs) > 0 {
		return NewConfigurationError("validate_config", errors.Join(errs...))
	}
	return nil
}

// EnterCue returns the cue played when screen is entered.
func (c Config) EnterCue(screen router.Screen) (Cue, bool) {
	cue, ok := c.EnterCues[screen.String()]
	return cue, ok && cue != ""
}
