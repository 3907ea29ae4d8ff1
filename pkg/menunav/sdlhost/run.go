package sdlhost

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/menunav/pkg/menunav"
	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
)

// Run drives eng until the window is closed, an exit action is dispatched or
// ctx is cancelled. Presses from hw, if not nil, are forwarded every frame.
// It must be called from the goroutine that called New.
func (h *Host) Run(ctx context.Context, eng *menunav.Engine, hw <-chan constants.VirtualButton) error {
	h.hw = hw
	eng.OnUpdate(h.cfg.GameplayScreen, h.scene.update)

	last := sdl.GetTicks64()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-eng.Exit():
			h.logger.Debug("Exit requested", "frames", eng.Frames())
			return nil
		default:
		}

		if !h.pollEvents(eng) {
			return nil
		}
		h.drainButtons(eng)
		h.repeatFocus(eng)

		now := sdl.GetTicks64()
		h.scene.dt = float64(now-last) / 1000
		last = now

		eng.Tick()
		h.reportPointer(eng)

		h.render()
		h.window.Present()
	}
}
