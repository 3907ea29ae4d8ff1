//go:build linux

// Package hwinput turns key events from a Linux input device into virtual
// button presses for handhelds without a windowing system keyboard.
package hwinput

import (
	"context"
	"errors"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

// ErrRunning is returned by Start when the watcher is already reading.
var ErrRunning = errors.New("hwinput: watcher already running")

// Key event values.
const (
	keyPressed  = 1
	keyRepeated = 2
)

// DefaultKeyMap maps gamepad and keyboard codes to virtual buttons.
var DefaultKeyMap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:         constants.VirtualButtonUp,
	evdev.KEY_DOWN:       constants.VirtualButtonDown,
	evdev.KEY_LEFT:       constants.VirtualButtonLeft,
	evdev.KEY_RIGHT:      constants.VirtualButtonRight,
	evdev.KEY_ENTER:      constants.VirtualButtonA,
	evdev.KEY_BACKSPACE:  constants.VirtualButtonB,
	evdev.KEY_ESC:        constants.VirtualButtonMenu,
	evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
	evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
	evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
	evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
	evdev.BTN_SOUTH:      constants.VirtualButtonA,
	evdev.BTN_EAST:       constants.VirtualButtonB,
	evdev.BTN_START:      constants.VirtualButtonStart,
	evdev.BTN_SELECT:     constants.VirtualButtonSelect,
	evdev.BTN_MODE:       constants.VirtualButtonMenu,
}

type eventSource interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Watcher reads one input device and publishes pressed buttons on Buttons.
type Watcher struct {
	path    string
	source  eventSource
	keys    map[evdev.EvCode]constants.VirtualButton
	delay   time.Duration
	now     func() time.Time
	running *atomic.Bool
	buttons chan constants.VirtualButton
	done    chan struct{}
	last    map[constants.VirtualButton]time.Time
}

// Open opens the device at path, e.g. /dev/input/event3.
func Open(path string) (*Watcher, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	if name, err := dev.Name(); err == nil {
		internal.GetInternalLogger().Debug("Opened input device", "path", path, "name", name)
	}
	w := newWatcher(dev)
	w.path = path
	return w, nil
}

func newWatcher(source eventSource) *Watcher {
	return &Watcher{
		source:  source,
		keys:    DefaultKeyMap,
		delay:   constants.DefaultInputDelay,
		now:     time.Now,
		running: atomic.NewBool(false),
		buttons: make(chan constants.VirtualButton, 16),
		done:    make(chan struct{}),
		last:    make(map[constants.VirtualButton]time.Time),
	}
}

// Buttons returns the channel pressed buttons are delivered on. It is closed
// when the watcher stops.
func (w *Watcher) Buttons() <-chan constants.VirtualButton {
	return w.buttons
}

// Start reads the device in a goroutine until ctx is cancelled or the device
// fails. Cancelling ctx closes the device.
func (w *Watcher) Start(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return ErrRunning
	}

	go w.read()
	go func() {
		select {
		case <-ctx.Done():
		case <-w.done:
		}
		if err := w.source.Close(); err != nil {
			internal.GetInternalLogger().Debug("Closing input device", "path", w.path, "error", err)
		}
	}()
	return nil
}

// Wait blocks until the reading goroutine has exited.
func (w *Watcher) Wait() {
	<-w.done
}

// Running reports whether the watcher is reading.
func (w *Watcher) Running() bool {
	return w.running.Load()
}

func (w *Watcher) read() {
	defer func() {
		w.running.Store(false)
		close(w.buttons)
		close(w.done)
	}()

	for {
		ev, err := w.source.ReadOne()
		if err != nil {
			internal.GetInternalLogger().Debug("Input device read stopped", "path", w.path, "error", err)
			return
		}
		button, ok := w.translate(ev)
		if !ok {
			continue
		}
		select {
		case w.buttons <- button:
		default:
			internal.GetInternalLogger().Warn("Dropping button, consumer is behind", "button", button.GetName())
		}
	}
}

// translate maps a key event to a button. Releases are ignored and presses of
// the same button closer together than the input delay are debounced.
func (w *Watcher) translate(ev *evdev.InputEvent) (constants.VirtualButton, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return constants.VirtualButtonUnassigned, false
	}
	if ev.Value != keyPressed && ev.Value != keyRepeated {
		return constants.VirtualButtonUnassigned, false
	}
	button, ok := w.keys[ev.Code]
	if !ok {
		return constants.VirtualButtonUnassigned, false
	}

	now := w.now()
	if last, seen := w.last[button]; seen && now.Sub(last) < w.delay {
		return constants.VirtualButtonUnassigned, false
	}
	w.last[button] = now
	return button, true
}
