package router

import (
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

// ErrEmptyHistory is returned by RequestBack when there is no previous screen
// to return to. The caller's fallback screen is used instead.
var ErrEmptyHistory = errors.New("router: no previous screen in history")

// Hooks are the lifecycle callbacks of a screen.
// Any of them may be nil.
type Hooks struct {
	OnEnter  func(from Screen) // Build UI and other per-screen resources
	OnExit   func(to Screen)   // Release everything OnEnter created
	OnUpdate func()            // Per-frame systems gated on this screen
}

// Option configures a Controller.
type Option func(*Controller)

// WithHistoryCapacity sets the number of screens kept for back navigation.
func WithHistoryCapacity(capacity int) Option {
	return func(c *Controller) {
		c.history = NewHistory(capacity)
	}
}

// WithGameplayScreen sets the screen whose entry clears the history.
func WithGameplayScreen(screen Screen) Option {
	return func(c *Controller) {
		c.gameplay = screen
	}
}

// WithLogger overrides the internal logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller owns the active screen and the navigation history.
// Transitions are requested at any point during a frame and applied once, at
// the start of the next frame, by ApplyPendingTransition.
type Controller struct {
	hooks    map[Screen][]Hooks
	history  *History
	gameplay Screen
	logger   *slog.Logger

	current Screen
	started bool

	pending     Screen
	hasPending  bool
	pendingBack bool
}

// NewController creates a controller that enters start on its first
// ApplyPendingTransition call.
func NewController(start Screen, opts ...Option) *Controller {
	c := &Controller{
		hooks:    make(map[Screen][]Hooks),
		history:  NewHistory(DefaultHistoryCapacity),
		gameplay: ScreenInGame,
		current:  start,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = internal.GetInternalLogger()
	}
	return c
}

// Register adds lifecycle hooks for a screen. Hooks registered for the same
// screen run in registration order.
func (c *Controller) Register(screen Screen, hooks Hooks) *Controller {
	c.hooks[screen] = append(c.hooks[screen], hooks)
	return c
}

// Current returns the active screen.
func (c *Controller) Current() Screen {
	return c.current
}

// Started reports whether the start screen has been entered.
func (c *Controller) Started() bool {
	return c.started
}

// Pending returns the queued transition target, if any.
func (c *Controller) Pending() (Screen, bool) {
	return c.pending, c.hasPending
}

// History returns the navigation history for read access.
func (c *Controller) History() *History {
	return c.history
}

// RequestTransition queues target as the next screen. The last request before
// ApplyPendingTransition wins.
func (c *Controller) RequestTransition(target Screen) {
	c.pending = target
	c.hasPending = true
	c.pendingBack = false
}

// RequestBack queues a transition to the most recently exited screen. With an
// empty history the fallback is queued and ErrEmptyHistory is returned.
// Calling it again before the next apply does not consume another entry.
func (c *Controller) RequestBack(fallback Screen) (Screen, error) {
	if c.hasPending && c.pendingBack {
		return c.pending, nil
	}

	target, ok := c.history.Pop()
	var err error
	if !ok {
		target = fallback
		err = ErrEmptyHistory
	}

	c.pending = target
	c.hasPending = true
	c.pendingBack = true
	return target, err
}

// ApplyPendingTransition runs the queued transition, if any: exit hooks of the
// current screen, history bookkeeping, then enter hooks of the target.
// The very first call enters the start screen instead.
// It returns true when enter hooks ran.
func (c *Controller) ApplyPendingTransition() bool {
	if !c.started {
		c.started = true
		c.logger.Debug("Entering start screen", "screen", c.current)
		c.runEnter(c.current, c.current)
		return true
	}

	if !c.hasPending {
		return false
	}

	target, back := c.pending, c.pendingBack
	c.hasPending = false
	c.pendingBack = false

	from := c.current
	c.runExit(from, target)
	c.history.Push(from)
	c.current = target

	if target == c.gameplay {
		c.history.Clear()
	}

	c.logger.Debug("Screen transition", "from", from, "to", target, "back", back, "history", c.history.Len())
	c.runEnter(target, from)
	return true
}

// Update runs the active screen's update hooks.
func (c *Controller) Update() {
	for _, h := range c.hooks[c.current] {
		if h.OnUpdate != nil {
			h.OnUpdate()
		}
	}
}

func (c *Controller) runEnter(screen, from Screen) {
	for _, h := range c.hooks[screen] {
		if h.OnEnter != nil {
			h.OnEnter(from)
		}
	}
}

func (c *Controller) runExit(screen, to Screen) {
	for _, h := range c.hooks[screen] {
		if h.OnExit != nil {
			h.OnExit(to)
		}
	}
}
