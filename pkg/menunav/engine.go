package menunav

import (
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/dispatch"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
	"github.com/BrandonKowalski/menunav/pkg/menunav/registry"
	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

type (
	Handle      = dispatch.Handle
	Element     = dispatch.Element
	Interaction = dispatch.Interaction
	Style       = dispatch.Style
	Cue         = dispatch.Cue
)

const (
	InteractionNone    = dispatch.InteractionNone
	InteractionHovered = dispatch.InteractionHovered
	InteractionPressed = dispatch.InteractionPressed

	StyleNormal  = dispatch.StyleNormal
	StyleHovered = dispatch.StyleHovered
	StylePressed = dispatch.StylePressed
)

// ScreenUI is everything a UI collaborator built for one screen.
type ScreenUI struct {
	Elements []Element // Selectable elements in display order
	Extra    []Handle  // Other owned nodes (backgrounds, sprites), despawned after the elements
}

// UI is the collaborator that builds and destroys a screen's widgets.
type UI interface {
	SpawnScreenUI(screen router.Screen, def registry.MenuDefinition) ScreenUI
	Despawn(h Handle)
	SetStyle(h Handle, s Style)
}

// Audio plays sound cues without blocking the frame.
type Audio interface {
	Play(cue Cue)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the application logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRouterOptions passes options through to the lifecycle controller.
func WithRouterOptions(opts ...router.Option) Option {
	return func(e *Engine) {
		e.routerOpts = append(e.routerOpts, opts...)
	}
}

// Engine drives the menu screens from the host's frame loop. All methods must
// be called from the frame loop goroutine, except Exit and ExitRequested.
type Engine struct {
	cfg        Config
	registry   *registry.Registry
	ctrl       *router.Controller
	dispatcher *dispatch.Dispatcher
	ui         UI
	audio      Audio
	logger     *slog.Logger
	routerOpts []router.Option

	elements []Element      // live elements of the active screen, display order
	extra    []Handle       // other live nodes of the active screen
	live     map[Handle]int // handle to index in elements
	focus    int            // index of the focused element, -1 for none

	frames   uint64
	exiting  *atomic.Bool
	exitOnce sync.Once
	exitCh   chan struct{}
}

// New initializes the engine. The start screen is entered on the first Tick.
// A nil registry or an invalid config is a *ConfigurationError.
func New(reg *registry.Registry, cfg Config, ui UI, audio Audio, opts ...Option) (*Engine, error) {
	if reg == nil {
		return nil, NewConfigurationError("new_engine", ErrNotInitialized)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ui == nil {
		return nil, NewConfigurationError("new_engine", fmt.Errorf("no UI collaborator"))
	}

	e := &Engine{
		cfg:      cfg,
		registry: reg,
		ui:       ui,
		audio:    audio,
		live:     make(map[Handle]int),
		focus:    -1,
		exiting:  atomic.NewBool(false),
		exitCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = internal.GetLogger()
	}

	routerOpts := append([]router.Option{
		router.WithHistoryCapacity(cfg.HistoryCapacity),
		router.WithGameplayScreen(cfg.GameplayScreen),
	}, e.routerOpts...)
	e.ctrl = router.NewController(cfg.StartScreen, routerOpts...)

	e.dispatcher = dispatch.New(e.ctrl, reg, ui, e.player(), dispatch.Options{
		Fallback: cfg.FallbackScreen,
		ClickCue: cfg.ClickCue,
		OnExit:   e.requestExit,
		Logger:   e.logger,
	})

	for _, s := range router.Screens() {
		s := s
		e.ctrl.Register(s, router.Hooks{
			OnEnter: func(from router.Screen) { e.enter(s, from) },
			OnExit:  func(to router.Screen) { e.exit(s, to) },
		})
	}

	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(reg *registry.Registry, cfg Config, ui UI, audio Audio, opts ...Option) *Engine {
	e, err := New(reg, cfg, ui, audio, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// OnUpdate registers a per-frame system that only runs while screen is
// active, after any transition of that frame has been applied.
func (e *Engine) OnUpdate(screen router.Screen, fn func()) {
	e.ctrl.Register(screen, router.Hooks{OnUpdate: fn})
}

// OnEnter registers a callback run after screen's UI has been spawned.
func (e *Engine) OnEnter(screen router.Screen, fn func(from router.Screen)) {
	e.ctrl.Register(screen, router.Hooks{OnEnter: fn})
}

// OnExit registers a callback run after screen's UI has been despawned.
func (e *Engine) OnExit(screen router.Screen, fn func(to router.Screen)) {
	e.ctrl.Register(screen, router.Hooks{OnExit: fn})
}

// CurrentScreen returns the active screen.
func (e *Engine) CurrentScreen() router.Screen {
	return e.ctrl.Current()
}

// History returns the navigation history for read access.
func (e *Engine) History() *router.History {
	return e.ctrl.History()
}

// Registry returns the menu registry the engine was built with.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Elements returns a copy of the active screen's live elements.
func (e *Engine) Elements() []Element {
	out := make([]Element, len(e.elements))
	copy(out, e.elements)
	return out
}

// Frames returns the number of completed ticks.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// RequestTransition queues a screen change for the next Tick.
func (e *Engine) RequestTransition(target router.Screen) {
	e.ctrl.RequestTransition(target)
}

// Tick runs one frame: the pending transition, if any, then the active
// screen's update systems.
func (e *Engine) Tick() {
	e.ctrl.ApplyPendingTransition()
	e.ctrl.Update()
	e.frames++
}

// NotifyInteraction reports an element's interaction state. Elements that do
// not belong to the active screen are ignored.
func (e *Engine) NotifyInteraction(el Element, state Interaction) {
	idx, ok := e.live[el.Handle]
	if !ok {
		e.logger.Debug("Ignoring interaction with element that is not live",
			"handle", el.Handle, "label", el.Label, "state", state)
		return
	}

	if state != InteractionNone && e.focus != idx {
		e.moveFocus(idx)
	}
	e.dispatcher.Interact(e.ctrl.Current(), e.elements[idx], state)
}

// NotifyButton reports a virtual button press. On menus Up and Down move the
// focus and A presses the focused element. It returns true when the engine
// consumed the button; directional buttons during gameplay are left to the
// host.
func (e *Engine) NotifyButton(button constants.VirtualButton) bool {
	if len(e.elements) > 0 {
		switch button {
		case constants.VirtualButtonUp:
			e.stepFocus(-1)
			return true
		case constants.VirtualButtonDown:
			e.stepFocus(1)
			return true
		case constants.VirtualButtonA:
			e.pressFocused()
			return true
		}
	}
	return e.dispatcher.HandleButton(e.ctrl.Current(), button)
}

// Exit returns a channel closed when an exit action is dispatched.
func (e *Engine) Exit() <-chan struct{} {
	return e.exitCh
}

// ExitRequested reports whether an exit action has been dispatched. Safe to
// call from any goroutine.
func (e *Engine) ExitRequested() bool {
	return e.exiting.Load()
}

func (e *Engine) requestExit() {
	e.exitOnce.Do(func() {
		e.exiting.Store(true)
		close(e.exitCh)
	})
}

func (e *Engine) player() dispatch.Player {
	if e.audio == nil {
		return nil
	}
	return e.audio
}

func (e *Engine) enter(screen, from router.Screen) {
	spawned := e.ui.SpawnScreenUI(screen, e.registry.Definition(screen))
	e.elements = spawned.Elements
	e.extra = spawned.Extra
	clear(e.live)
	for i, el := range e.elements {
		e.live[el.Handle] = i
	}
	e.focus = -1
	e.dispatcher.Reset()

	if cue, ok := e.cfg.EnterCue(screen); ok && e.audio != nil {
		e.audio.Play(cue)
	}
	e.logger.Info("Entered screen", "screen", screen, "from", from, "elements", len(e.elements))
}

func (e *Engine) exit(screen, to router.Screen) {
	for _, el := range e.elements {
		e.ui.Despawn(el.Handle)
	}
	for _, h := range e.extra {
		e.ui.Despawn(h)
	}
	e.elements = nil
	e.extra = nil
	clear(e.live)
	e.focus = -1
	e.dispatcher.Reset()
	e.logger.Debug("Exited screen", "screen", screen, "to", to)
}

func (e *Engine) moveFocus(idx int) {
	if e.focus >= 0 && e.focus != idx {
		prev := e.elements[e.focus]
		if e.dispatcher.State(prev.Handle) != InteractionNone {
			e.dispatcher.Interact(e.ctrl.Current(), prev, InteractionNone)
		}
	}
	e.focus = idx
}

func (e *Engine) stepFocus(delta int) {
	n := len(e.elements)
	next := 0
	if e.focus >= 0 {
		next = ((e.focus+delta)%n + n) % n
	} else if delta < 0 {
		next = n - 1
	}
	e.moveFocus(next)
	e.dispatcher.Interact(e.ctrl.Current(), e.elements[next], InteractionHovered)
}

func (e *Engine) pressFocused() {
	if e.focus < 0 {
		e.stepFocus(1)
		return
	}
	el := e.elements[e.focus]
	if e.dispatcher.State(el.Handle) == InteractionPressed {
		e.dispatcher.Interact(e.ctrl.Current(), el, InteractionHovered)
	}
	e.dispatcher.Interact(e.ctrl.Current(), el, InteractionPressed)
}
