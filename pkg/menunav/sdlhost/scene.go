package sdlhost

import (
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

// scene is the gameplay screen: a sprite steered by the held directions whose
// blue channel pulses over time.
type scene struct {
	dirs    *internal.DirectionalInput
	x, y    float64
	w, h    float64
	boundsW float64
	boundsH float64
	dt      float64 // seconds since the previous frame
	elapsed float64 // seconds since the scene was entered
}

func (s *scene) reset(spriteW, spriteH, boundsW, boundsH int32) {
	s.w, s.h = float64(spriteW), float64(spriteH)
	s.boundsW, s.boundsH = float64(boundsW), float64(boundsH)
	s.x = (s.boundsW - s.w) / 2
	s.y = (s.boundsH - s.h) / 2
	s.elapsed = 0
}

// update runs once per frame while the gameplay screen is active.
func (s *scene) update() {
	if dx, dy := s.dirs.Vector(); dx != 0 || dy != 0 {
		s.x, s.y = internal.Move(s.x, s.y, dx, dy, s.dt)
		s.x, s.y = internal.Clamp(s.x, s.y, s.w, s.h, s.boundsW, s.boundsH)
	}
	s.elapsed += s.dt
}

func (s *scene) blue() uint8 {
	return internal.PulseBlue(s.elapsed)
}

func (s *scene) rect() internal.Rect {
	return internal.Rect{X: int32(s.x), Y: int32(s.y), W: int32(s.w), H: int32(s.h)}
}
