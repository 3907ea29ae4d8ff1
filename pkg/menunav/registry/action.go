package registry

import (
	"fmt"

	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

// Action is the stable identifier for what a selectable element does,
// independent of the label it is rendered with.
type Action int

const (
	ActionNoop          Action = iota // Log only
	ActionResumeGame                  // Enter gameplay
	ActionOpenSettings                // Open the settings menu
	ActionOpenMainMenu                // Return to the title screen
	ActionOpenPauseMenu               // Open the pause menu
	ActionExitGame                    // Ask the host to quit
	ActionGoBack                      // Return to the previous screen
)

// Actions returns every action in declaration order.
func Actions() []Action {
	return []Action{
		ActionNoop,
		ActionResumeGame,
		ActionOpenSettings,
		ActionOpenMainMenu,
		ActionOpenPauseMenu,
		ActionExitGame,
		ActionGoBack,
	}
}

func (a Action) String() string {
	switch a {
	case ActionNoop:
		return "noop"
	case ActionResumeGame:
		return "resume_game"
	case ActionOpenSettings:
		return "open_settings"
	case ActionOpenMainMenu:
		return "open_main_menu"
	case ActionOpenPauseMenu:
		return "open_pause_menu"
	case ActionExitGame:
		return "exit_game"
	case ActionGoBack:
		return "go_back"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Target returns the screen a screen-opening action leads to.
// The boolean is false for actions that do not open a screen directly.
func (a Action) Target() (router.Screen, bool) {
	switch a {
	case ActionResumeGame:
		return router.ScreenInGame, true
	case ActionOpenSettings:
		return router.ScreenSettingsMenu, true
	case ActionOpenMainMenu:
		return router.ScreenMainMenu, true
	case ActionOpenPauseMenu:
		return router.ScreenPauseMenu, true
	case ActionNoop, ActionExitGame, ActionGoBack:
		return 0, false
	default:
		return 0, false
	}
}

func (a Action) MarshalText() ([]byte, error) {
	for _, known := range Actions() {
		if known == a {
			return []byte(a.String()), nil
		}
	}
	return nil, fmt.Errorf("registry: unknown action %d", int(a))
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction converts a text name such as "go_back" to an Action.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("registry: unknown action %q", name)
}
