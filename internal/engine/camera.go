package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/hopper/internal/core"
)

// Camera shakes the rendered view.
type Camera struct {
	size      core.Vec
	rng       *rand.Rand
	remaining time.Duration
	intensity float64
	offset    core.Vec
}

// NewCamera creates a camera over a view of the given pixel size.
func NewCamera(size core.Vec, rng *rand.Rand) *Camera {
	return &Camera{size: size, rng: rng}
}

// Shake displaces the view randomly by up to intensity × view size for
// the given duration. A shake in progress is not restarted.
func (c *Camera) Shake(d time.Duration, intensity float64) {
	if c.Shaking() {
		return
	}
	c.remaining = d
	c.intensity = intensity
}

// Shaking reports whether a shake is in progress.
func (c *Camera) Shaking() bool {
	return c.remaining > 0
}

// Offset returns the current view displacement in pixels.
func (c *Camera) Offset() core.Vec {
	return c.offset
}

// Update advances the shake by dt seconds.
func (c *Camera) Update(dt float64) {
	if !c.Shaking() {
		c.offset = core.Vec{}
		return
	}
	c.remaining -= time.Duration(dt * float64(time.Second))
	if c.remaining <= 0 {
		c.remaining = 0
		c.offset = core.Vec{}
		return
	}
	c.offset = core.Vec{
		X: (c.rng.Float64()*2 - 1) * c.intensity * c.size.X,
		Y: (c.rng.Float64()*2 - 1) * c.intensity * c.size.Y,
	}
}
