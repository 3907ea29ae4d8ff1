package router

import "fmt"

// Screen is a type-safe identifier for one of the mutually exclusive top-level
// UI modes. The set is closed; adding a screen means adding a constant here and
// a case to every switch over Screen.
type Screen int

const (
	ScreenMainMenu     Screen = iota // Title screen shown at startup
	ScreenPauseMenu                  // Overlay menu reached from gameplay
	ScreenSettingsMenu               // Settings, reachable from main and pause menus
	ScreenInGame                     // Primary gameplay screen
)

// Screens returns every screen in declaration order.
func Screens() []Screen {
	return []Screen{ScreenMainMenu, ScreenPauseMenu, ScreenSettingsMenu, ScreenInGame}
}

// String returns the stable text name of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "main_menu"
	case ScreenPauseMenu:
		return "pause_menu"
	case ScreenSettingsMenu:
		return "settings_menu"
	case ScreenInGame:
		return "in_game"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Valid reports whether s is one of the declared screens.
func (s Screen) Valid() bool {
	switch s {
	case ScreenMainMenu, ScreenPauseMenu, ScreenSettingsMenu, ScreenInGame:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Screen) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("router: unknown screen %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so screens can be named in
// TOML files.
func (s *Screen) UnmarshalText(text []byte) error {
	parsed, err := ParseScreen(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseScreen converts a text name such as "pause_menu" to a Screen.
func ParseScreen(name string) (Screen, error) {
	for _, s := range Screens() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("router: unknown screen %q", name)
}
