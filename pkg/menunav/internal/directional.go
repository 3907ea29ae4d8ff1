package internal

import (
	"math"
	"time"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held directions. Menus use it for key repeat while
// a direction is held; the gameplay scene reads the held vector every frame.
type DirectionalInput struct {
	held struct {
		up, down, left, right bool
	}
	now            func() time.Time
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 80ms between repeats.
func NewDirectionalInput() *DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 80*time.Millisecond, time.Now)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing
// and clock.
func NewDirectionalInputWithTiming(delay, interval time.Duration, now func() time.Time) *DirectionalInput {
	return &DirectionalInput{
		now:            now,
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: now(),
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonUp:
		d.held.up = held
	case constants.VirtualButtonDown:
		d.held.down = held
	case constants.VirtualButtonLeft:
		d.held.left = held
	case constants.VirtualButtonRight:
		d.held.right = held
	default:
		return false
	}
	if held {
		d.lastRepeatTime = d.now()
	}
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down || d.held.left || d.held.right
}

// HeldDirection returns the currently held direction.
// If multiple directions are held, priority is: up, down, left, right.
func (d *DirectionalInput) HeldDirection() Direction {
	switch {
	case d.held.up:
		return DirectionUp
	case d.held.down:
		return DirectionDown
	case d.held.left:
		return DirectionLeft
	case d.held.right:
		return DirectionRight
	}
	return DirectionNone
}

// Vector returns the unit vector of all held directions in window coordinates
// (y grows downwards). Opposite directions cancel out.
func (d *DirectionalInput) Vector() (x, y float64) {
	if d.held.left {
		x--
	}
	if d.held.right {
		x++
	}
	if d.held.up {
		y--
	}
	if d.held.down {
		y++
	}
	if n := math.Hypot(x, y); n > 0 {
		x, y = x/n, y/n
	}
	return x, y
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the direction that should be processed,
// or DirectionNone if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.held.left = false
	d.held.right = false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// VirtualButton returns the VirtualButton for a Direction.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
