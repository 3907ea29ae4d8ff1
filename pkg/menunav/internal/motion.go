package internal

import "math"

// Gameplay scene tuning.
const (
	MoveSpeed  = 900.0 // pixels per second
	PulseSpeed = 5.0   // radians per second of the colour pulse
)

// Move advances a position along the unit vector (dx, dy) for dt seconds.
func Move(x, y, dx, dy, dt float64) (float64, float64) {
	return x + dx*MoveSpeed*dt, y + dy*MoveSpeed*dt
}

// Clamp keeps a w x h box at (x, y) inside a bounds w x h area.
func Clamp(x, y, w, h, boundsW, boundsH float64) (float64, float64) {
	x = math.Max(0, math.Min(x, boundsW-w))
	y = math.Max(0, math.Min(y, boundsH-h))
	return x, y
}

// PulseBlue returns the blue colour modulation at t seconds since the scene
// started. The raw value sin(5t)+2 ranges over [1, 3] and is mapped to a byte
// with 3 as full intensity.
func PulseBlue(t float64) uint8 {
	raw := math.Sin(t*PulseSpeed) + 2
	return uint8(math.Round(raw / 3 * 255))
}
