// Package physics implements a small arcade physics world: axis-aligned
// bodies under uniform gravity, world bounds and pairwise colliders that
// report which faces touched. Contacts are found through a resolv space;
// separation and bounce follow arcade rules on top of it.
package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/hopper/internal/core"
)

// skin pads every resolv object on each side so that sub-pixel overlaps
// still share a space cell.
const skin = 1.0

// Faces records contact on each side of a body.
type Faces struct {
	Up, Down, Left, Right bool
}

// Any reports whether any face is in contact.
func (f Faces) Any() bool {
	return f.Up || f.Down || f.Left || f.Right
}

// Body is a rectangular physics body. Position is the top-left corner.
type Body struct {
	Pos    core.Vec
	Size   core.Vec
	Vel    core.Vec
	Bounce core.Vec

	// AllowGravity applies world gravity during Step.
	AllowGravity bool
	// CollideWorldBounds keeps the body inside the checked world bound faces.
	CollideWorldBounds bool
	// Immovable bodies are never displaced by a collision with another body.
	Immovable bool

	// Touching is set by colliders during the last step.
	Touching Faces
	// Blocked is set by world bounds during the last step.
	Blocked Faces

	static bool
	prev   core.Vec       // position at the start of the step
	obj    *resolv.Object // shadow of the body in the world's space
}

// NewBody creates a dynamic body of size (w, h) centered on (cx, cy).
func NewBody(cx, cy, w, h float64) *Body {
	b := &Body{
		Size:         core.Vec{X: w, Y: h},
		AllowGravity: true,
		obj:          resolv.NewObject(0, 0, w+2*skin, h+2*skin),
	}
	b.SetCenter(cx, cy)
	return b
}

// NewStaticBody creates a body that never moves but still collides.
func NewStaticBody(cx, cy, w, h float64) *Body {
	b := NewBody(cx, cy, w, h)
	b.static = true
	b.AllowGravity = false
	b.Immovable = true
	return b
}

// Static reports whether the body is static.
func (b *Body) Static() bool {
	return b.static
}

// Left returns the x-coordinate of the left edge.
func (b *Body) Left() float64 { return b.Pos.X }

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 { return b.Pos.X + b.Size.X }

// Top returns the y-coordinate of the top edge.
func (b *Body) Top() float64 { return b.Pos.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 { return b.Pos.Y + b.Size.Y }

// Center returns the center point of the body.
func (b *Body) Center() core.Vec {
	return core.Vec{X: b.Pos.X + b.Size.X/2, Y: b.Pos.Y + b.Size.Y/2}
}

// Object returns the resolv object that tracks the body. It is placed in
// space coordinates and padded by a one pixel skin.
func (b *Body) Object() *resolv.Object {
	return b.obj
}

// SetCenter moves the body so that its center is at (cx, cy).
// The move is a teleport: it does not count as motion for the next collision.
func (b *Body) SetCenter(cx, cy float64) {
	b.Pos = core.Vec{X: cx - b.Size.X/2, Y: cy - b.Size.Y/2}
	b.prev = b.Pos
}

// Rect returns the body's bounding box.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}

// SetVelocityX sets the horizontal velocity in px/s.
func (b *Body) SetVelocityX(vx float64) {
	b.Vel.X = vx
}

// SetVelocityY sets the vertical velocity in px/s.
func (b *Body) SetVelocityY(vy float64) {
	b.Vel.Y = vy
}

// delta returns how far the body moved during the current step.
func (b *Body) delta() core.Vec {
	return b.Pos.Sub(b.prev)
}

// fixed reports whether collisions may displace this body.
func (b *Body) fixed() bool {
	return b.static || b.Immovable
}
