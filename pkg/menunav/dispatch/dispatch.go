package dispatch

import (
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
	"github.com/BrandonKowalski/menunav/pkg/menunav/registry"
	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

// Navigator queues screen transitions. *router.Controller implements it.
type Navigator interface {
	RequestTransition(target router.Screen)
	RequestBack(fallback router.Screen) (router.Screen, error)
}

// Resolver maps a label on a screen to an action. *registry.Registry
// implements it.
type Resolver interface {
	Lookup(screen router.Screen, label string) (registry.Action, error)
}

// Styler applies a visual style to an element.
type Styler interface {
	SetStyle(h Handle, s Style)
}

// Player plays a sound cue. Calls must not block the frame.
type Player interface {
	Play(cue Cue)
}

// Options configures a Dispatcher.
type Options struct {
	Fallback router.Screen // Target of "back" when the history is empty
	ClickCue Cue           // Played on every press; empty disables it
	OnExit   func()        // Called for ActionExitGame
	Logger   *slog.Logger
}

// Dispatcher turns element interaction edges into styles, sounds and
// transition requests. It never changes the active screen itself.
type Dispatcher struct {
	nav    Navigator
	res    Resolver
	styler Styler
	player Player
	opts   Options
	logger *slog.Logger

	last map[Handle]Interaction
}

// New creates a Dispatcher. styler and player may be nil.
func New(nav Navigator, res Resolver, styler Styler, player Player, opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}
	return &Dispatcher{
		nav:    nav,
		res:    res,
		styler: styler,
		player: player,
		opts:   opts,
		logger: logger,
		last:   make(map[Handle]Interaction),
	}
}

// Reset forgets the last known state of every element. Call it whenever the
// active screen's elements are replaced.
func (d *Dispatcher) Reset() {
	clear(d.last)
}

// Forget drops the last known state of a single element.
func (d *Dispatcher) Forget(h Handle) {
	delete(d.last, h)
}

// State returns the last interaction seen for an element.
func (d *Dispatcher) State(h Handle) Interaction {
	return d.last[h]
}

// Interact reacts to an element's interaction state on screen. Only changes
// are acted upon; reporting the same state twice in a row is ignored.
// It returns the action dispatched by a press, or ActionNoop.
func (d *Dispatcher) Interact(screen router.Screen, el Element, state Interaction) registry.Action {
	if prev, seen := d.last[el.Handle]; (seen || state == InteractionNone) && prev == state {
		return registry.ActionNoop
	}
	d.last[el.Handle] = state

	switch state {
	case InteractionHovered:
		d.setStyle(el.Handle, StyleHovered)
		return registry.ActionNoop
	case InteractionPressed:
		d.setStyle(el.Handle, StylePressed)
		d.play(d.opts.ClickCue)
		return d.press(screen, el)
	case InteractionNone:
		d.setStyle(el.Handle, StyleNormal)
		return registry.ActionNoop
	default:
		d.logger.Warn("Unknown interaction state", "screen", screen, "label", el.Label, "state", state)
		return registry.ActionNoop
	}
}

func (d *Dispatcher) press(screen router.Screen, el Element) registry.Action {
	action, err := d.res.Lookup(screen, el.Label)
	if err != nil {
		d.logger.Info("Unresolved action", "event", "unresolved_action", "screen", screen, "label", el.Label)
		return registry.ActionNoop
	}
	d.Dispatch(screen, action)
	return action
}

// Dispatch performs an action requested from screen.
func (d *Dispatcher) Dispatch(screen router.Screen, action registry.Action) {
	switch action {
	case registry.ActionResumeGame,
		registry.ActionOpenSettings,
		registry.ActionOpenMainMenu,
		registry.ActionOpenPauseMenu:
		target, _ := action.Target()
		d.logger.Debug("Transition requested", "from", screen, "to", target, "action", action)
		d.nav.RequestTransition(target)
	case registry.ActionGoBack:
		d.back(screen)
	case registry.ActionExitGame:
		d.logger.Info("Exit requested", "screen", screen)
		if d.opts.OnExit != nil {
			d.opts.OnExit()
		}
	case registry.ActionNoop:
		d.logger.Info("No-op action", "screen", screen)
	default:
		d.logger.Warn("Unhandled action", "screen", screen, "action", action)
	}
}

func (d *Dispatcher) back(screen router.Screen) {
	target, err := d.nav.RequestBack(d.opts.Fallback)
	if errors.Is(err, router.ErrEmptyHistory) {
		d.logger.Warn("No previous screen, using fallback",
			"event", "empty_history", "screen", screen, "fallback", target)
		return
	}
	d.logger.Debug("Back requested", "from", screen, "to", target)
}

// HandleButton reacts to a virtual button that is not tied to an element:
// Menu or Start pauses gameplay, B goes back from any menu.
// It returns true when the button was consumed.
func (d *Dispatcher) HandleButton(screen router.Screen, button constants.VirtualButton) bool {
	switch screen {
	case router.ScreenInGame:
		switch button {
		case constants.VirtualButtonMenu, constants.VirtualButtonStart:
			d.Dispatch(screen, registry.ActionOpenPauseMenu)
			return true
		}
	case router.ScreenPauseMenu:
		switch button {
		case constants.VirtualButtonMenu, constants.VirtualButtonStart:
			d.Dispatch(screen, registry.ActionResumeGame)
			return true
		case constants.VirtualButtonB:
			d.Dispatch(screen, registry.ActionGoBack)
			return true
		}
	case router.ScreenMainMenu, router.ScreenSettingsMenu:
		if button == constants.VirtualButtonB {
			d.Dispatch(screen, registry.ActionGoBack)
			return true
		}
	}
	return false
}

func (d *Dispatcher) setStyle(h Handle, s Style) {
	if d.styler != nil {
		d.styler.SetStyle(h, s)
	}
}

func (d *Dispatcher) play(cue Cue) {
	if d.player != nil && cue != "" {
		d.player.Play(cue)
	}
}
