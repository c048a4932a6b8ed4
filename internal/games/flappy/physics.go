package flappy

// Body is the bird's vertical state. Y grows downward.
type Body struct {
	Y        float64 // Top of the bird, pixels from the top of the play area
	Velocity float64 // Pixels per frame
}

// Integrate advances the body by one frame under constant gravity.
// Y is clamped at the ceiling, but the velocity is kept as is: a bird
// pinned to the ceiling keeps its upward speed until gravity wins.
func Integrate(b Body, gravity float64) Body {
	b.Velocity += gravity
	b.Y += b.Velocity
	if b.Y < 0 {
		b.Y = 0
	}
	return b
}
