package sdlhost

import (
	"github.com/BrandonKowalski/menunav/pkg/menunav"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

type target struct {
	handle menunav.Handle
	rect   internal.Rect
}

type pointerEdge struct {
	handle menunav.Handle
	state  menunav.Interaction
}

// pointer derives per-element interaction states from the mouse. An element
// is pressed only if the button went down over it; holding the button across
// a screen change hovers the new element under it. States are only derived
// after the mouse did something, so a still cursor never takes the focus back
// from the keyboard.
type pointer struct {
	x, y      int32
	down      bool
	dirty     bool
	pressedOn menunav.Handle
	reported  map[menunav.Handle]menunav.Interaction
}

func newPointer() *pointer {
	return &pointer{reported: make(map[menunav.Handle]menunav.Interaction)}
}

func (p *pointer) move(x, y int32) {
	p.x, p.y = x, y
	p.dirty = true
}

func (p *pointer) press(x, y int32, targets []target) {
	p.move(x, y)
	p.down = true
	p.pressedOn = 0
	if i := hit(targets, x, y); i >= 0 {
		p.pressedOn = targets[i].handle
	}
}

func (p *pointer) release(x, y int32) {
	p.move(x, y)
	p.down = false
	p.pressedOn = 0
}

// reset forgets reported states after the elements were replaced.
func (p *pointer) reset() {
	clear(p.reported)
	p.pressedOn = 0
	p.dirty = true
}

// forget drops the reported state of an element that was reset by someone
// else, such as keyboard focus leaving it.
func (p *pointer) forget(handle menunav.Handle) {
	delete(p.reported, handle)
}

// edges returns the elements whose state changed since the last call. It
// returns nothing unless the mouse moved, was pressed or released, or the
// elements were replaced.
func (p *pointer) edges(targets []target) []pointerEdge {
	if !p.dirty {
		return nil
	}
	p.dirty = false

	var out []pointerEdge
	for _, t := range targets {
		state := menunav.InteractionNone
		if t.rect.Contains(p.x, p.y) {
			state = menunav.InteractionHovered
			if p.down && p.pressedOn == t.handle {
				state = menunav.InteractionPressed
			}
		}
		if p.reported[t.handle] == state {
			continue
		}
		p.reported[t.handle] = state
		out = append(out, pointerEdge{handle: t.handle, state: state})
	}
	return out
}

func hit(targets []target, x, y int32) int {
	rects := make([]internal.Rect, len(targets))
	for i, t := range targets {
		rects[i] = t.rect
	}
	return internal.HitTest(rects, x, y)
}
