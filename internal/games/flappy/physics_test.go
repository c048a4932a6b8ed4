package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrateFreeFall(t *testing.T) {
	b := Body{Y: 200}
	for i := 0; i < 20; i++ {
		b = Integrate(b, 0.5)
	}

	// 200 + (0.5 + 1.0 + ... + 10.0)
	assert.Equal(t, 10.0, b.Velocity)
	assert.Equal(t, 305.0, b.Y)
}

func TestIntegrateClampsAtCeiling(t *testing.T) {
	tests := []struct {
		name string
		in   Body
	}{
		{"slow rise", Body{Y: 3, Velocity: -8}},
		{"already at top", Body{Y: 0, Velocity: -8}},
		{"huge impulse", Body{Y: 10, Velocity: -1e6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Integrate(tc.in, 0.5)
			assert.Equal(t, 0.0, out.Y)
			assert.GreaterOrEqual(t, out.Y, 0.0)
		})
	}
}

// The clamp only moves the bird; its upward speed survives, so it stays
// pinned to the ceiling until gravity has cancelled the impulse.
func TestIntegrateCeilingKeepsVelocity(t *testing.T) {
	b := Integrate(Body{Y: 3, Velocity: -8}, 0.5)
	assert.Equal(t, 0.0, b.Y)
	assert.Equal(t, -7.5, b.Velocity)

	frames := 1
	for b.Y == 0 {
		b = Integrate(b, 0.5)
		frames++
	}
	assert.Equal(t, 17, frames, "pinned until velocity turns positive")
}
