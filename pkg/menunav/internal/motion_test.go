package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	x, y := Move(100, 100, 1, 0, 0.5)
	assert.InDelta(t, 550, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)

	x, y = Clamp(-20, 900, 64, 64, 1024, 768)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 704.0, y)
}

func TestPulseBlue(t *testing.T) {
	assert.Equal(t, uint8(170), PulseBlue(0))
	assert.Equal(t, uint8(255), PulseBlue(math.Pi/10))
	assert.Equal(t, uint8(85), PulseBlue(3*math.Pi/10))
}
