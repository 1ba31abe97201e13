package physics

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/hopper/internal/core"
)

// DefaultOverlapBias is the slack, in pixels, added to the per-step motion
// when deciding whether an overlap is a genuine contact on that axis.
const DefaultOverlapBias = 4.0

const (
	spaceCell   = 16  // resolv cell size in px
	spaceMargin = 512 // room around the bounds for bodies that left the world
)

// CollideFunc is called after two bodies were separated.
type CollideFunc func(a, b *Body)

// Collider resolves contact between a pair of bodies on every step.
type Collider struct {
	a, b      *Body
	callback  CollideFunc
	active    bool
	colliding bool
}

// Colliding reports whether the last step separated this pair.
func (c *Collider) Colliding() bool {
	return c.colliding
}

// Destroy stops the collider from running.
func (c *Collider) Destroy() {
	c.active = false
	c.colliding = false
}

// World owns the bodies and colliders of a scene.
type World struct {
	Gravity     core.Vec
	Bounds      core.Rect
	CheckBounds Faces
	OverlapBias float64

	bodies    []*Body
	colliders []*Collider

	space  *resolv.Space
	origin core.Vec // world position of the space's top-left corner
}

// NewWorld creates a world with the given gravity in px/s².
// Bounds default to an empty rectangle with no faces checked.
func NewWorld(gravity core.Vec) *World {
	w := &World{
		Gravity:     gravity,
		OverlapBias: DefaultOverlapBias,
	}
	w.buildSpace()
	return w
}

// SetBounds sets the world rectangle and which of its faces stop bodies.
// The collision space is resized to cover the bounds plus a margin; bodies
// further out than the margin no longer collide.
func (w *World) SetBounds(bounds core.Rect, check Faces) {
	w.Bounds = bounds
	w.CheckBounds = check
	w.buildSpace()
}

// buildSpace creates the resolv space around the bounds and re-adds bodies.
func (w *World) buildSpace() {
	w.origin = core.Vec{X: w.Bounds.X - spaceMargin, Y: w.Bounds.Y - spaceMargin}
	width := int(math.Ceil((w.Bounds.W+2*spaceMargin)/spaceCell)) * spaceCell
	height := int(math.Ceil((w.Bounds.H+2*spaceMargin)/spaceCell)) * spaceCell
	w.space = resolv.NewSpace(width, height, spaceCell, spaceCell)

	for _, b := range w.bodies {
		w.space.Add(b.obj)
		w.place(b)
	}
}

// place moves the body's resolv object to the body's position.
func (w *World) place(b *Body) {
	b.obj.X = b.Pos.X - w.origin.X - skin
	b.obj.Y = b.Pos.Y - w.origin.Y - skin
	b.obj.W = b.Size.X + 2*skin
	b.obj.H = b.Size.Y + 2*skin
	b.obj.Update()
}

// Add registers a body with the world and returns it.
func (w *World) Add(b *Body) *Body {
	w.bodies = append(w.bodies, b)
	w.space.Add(b.obj)
	w.place(b)
	return b
}

// Bodies returns the registered bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Collide registers a collider between a and b. callback may be nil.
func (w *World) Collide(a, b *Body, callback CollideFunc) *Collider {
	c := &Collider{a: a, b: b, callback: callback, active: true}
	w.colliders = append(w.colliders, c)
	return c
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.Touching = Faces{}
		b.Blocked = Faces{}
		b.prev = b.Pos
		if !b.static {
			if b.AllowGravity {
				b.Vel = b.Vel.Add(w.Gravity.Scale(dt))
			}
			b.Pos = b.Pos.Add(b.Vel.Scale(dt))

			if b.CollideWorldBounds {
				w.checkWorldBounds(b)
			}
		}
		// Static bodies still pick up SetCenter teleports here.
		w.place(b)
	}

	for _, c := range w.colliders {
		if !c.active {
			continue
		}
		c.colliding = w.separate(c.a, c.b)
		if c.colliding && c.callback != nil {
			c.callback(c.a, c.b)
		}
	}
}

// checkWorldBounds clamps a body inside the checked faces of the bounds.
func (w *World) checkWorldBounds(b *Body) {
	if w.CheckBounds.Left && b.Left() < w.Bounds.X {
		b.Pos.X = w.Bounds.X
		b.Vel.X = -b.Vel.X * b.Bounce.X
		b.Blocked.Left = true
	} else if w.CheckBounds.Right && b.Right() > w.Bounds.Right() {
		b.Pos.X = w.Bounds.Right() - b.Size.X
		b.Vel.X = -b.Vel.X * b.Bounce.X
		b.Blocked.Right = true
	}

	if w.CheckBounds.Up && b.Top() < w.Bounds.Y {
		b.Pos.Y = w.Bounds.Y
		b.Vel.Y = -b.Vel.Y * b.Bounce.Y
		b.Blocked.Up = true
	} else if w.CheckBounds.Down && b.Bottom() > w.Bounds.Bottom() {
		b.Pos.Y = w.Bounds.Bottom() - b.Size.Y
		b.Vel.Y = -b.Vel.Y * b.Bounce.Y
		b.Blocked.Down = true
	}
}

// separate resolves an overlap between a and b. Gravity is vertical, so the
// Y axis is tried first and X only if the bodies still intersect.
func (w *World) separate(a, b *Body) bool {
	if a.fixed() && b.fixed() {
		return false
	}
	if !overlapping(a, b) {
		return false
	}

	var resolvedX, resolvedY bool
	if math.Abs(w.Gravity.Y) < math.Abs(w.Gravity.X) {
		resolvedX = w.separateX(a, b)
		if overlapping(a, b) {
			resolvedY = w.separateY(a, b)
		}
	} else {
		resolvedY = w.separateY(a, b)
		if overlapping(a, b) {
			resolvedX = w.separateX(a, b)
		}
	}
	return resolvedX || resolvedY
}

// overlapping reports whether a and b intersect. The space gives the
// candidates; touching edges do not count.
func overlapping(a, b *Body) bool {
	coll := a.obj.Check(0, 0)
	if coll == nil || !slices.Contains(coll.Objects, b.obj) {
		return false
	}
	return a.Rect().Intersects(b.Rect())
}

// contact returns how far a has to move along (dx, dy) to just touch b, on
// the unpadded boxes. Only the sign of dx and dy matters.
func contact(a, b *Body, dx, dy float64) (core.Vec, bool) {
	coll := a.obj.Check(dx, dy)
	if coll == nil || !slices.Contains(coll.Objects, b.obj) {
		return core.Vec{}, false
	}
	d := coll.ContactWithObject(b.obj)
	// Both objects carry the skin on each side.
	return core.Vec{X: d.X() + unskin(dx), Y: d.Y() + unskin(dy)}, true
}

func unskin(d float64) float64 {
	switch {
	case d > 0:
		return 2 * skin
	case d < 0:
		return -2 * skin
	}
	return 0
}

// overlapY returns the penetration on the Y axis and marks touching faces.
// Positive means a is above b. Zero means this is not a vertical contact.
func (w *World) overlapY(a, b *Body) float64 {
	da, db := a.delta().Y, b.delta().Y
	maxOverlap := math.Abs(da) + math.Abs(db) + w.OverlapBias

	switch {
	case da > db:
		c, ok := contact(a, b, 0, 1)
		overlap := -c.Y // a.Bottom() - b.Top()
		if !ok || overlap <= 0 || overlap > maxOverlap {
			return 0
		}
		a.Touching.Down = true
		b.Touching.Up = true
		return overlap
	case da < db:
		c, ok := contact(a, b, 0, -1)
		overlap := -c.Y // a.Top() - b.Bottom()
		if !ok || overlap >= 0 || -overlap > maxOverlap {
			return 0
		}
		a.Touching.Up = true
		b.Touching.Down = true
		return overlap
	}
	return 0
}

// overlapX returns the penetration on the X axis and marks touching faces.
// Positive means a is left of b.
func (w *World) overlapX(a, b *Body) float64 {
	da, db := a.delta().X, b.delta().X
	maxOverlap := math.Abs(da) + math.Abs(db) + w.OverlapBias

	switch {
	case da > db:
		c, ok := contact(a, b, 1, 0)
		overlap := -c.X // a.Right() - b.Left()
		if !ok || overlap <= 0 || overlap > maxOverlap {
			return 0
		}
		a.Touching.Right = true
		b.Touching.Left = true
		return overlap
	case da < db:
		c, ok := contact(a, b, -1, 0)
		overlap := -c.X // a.Left() - b.Right()
		if !ok || overlap >= 0 || -overlap > maxOverlap {
			return 0
		}
		a.Touching.Left = true
		b.Touching.Right = true
		return overlap
	}
	return 0
}

func (w *World) separateY(a, b *Body) bool {
	overlap := w.overlapY(a, b)
	if overlap == 0 {
		return false
	}

	va, vb := a.Vel.Y, b.Vel.Y
	switch {
	case !a.fixed() && !b.fixed():
		a.Pos.Y -= overlap / 2
		b.Pos.Y += overlap / 2
		avg := (va + vb) / 2
		a.Vel.Y = avg - (va-avg)*a.Bounce.Y
		b.Vel.Y = avg - (vb-avg)*b.Bounce.Y
	case !a.fixed():
		a.Pos.Y -= overlap
		a.Vel.Y = vb - va*a.Bounce.Y
	default:
		b.Pos.Y += overlap
		b.Vel.Y = va - vb*b.Bounce.Y
	}
	w.place(a)
	w.place(b)
	return true
}

func (w *World) separateX(a, b *Body) bool {
	overlap := w.overlapX(a, b)
	if overlap == 0 {
		return false
	}

	va, vb := a.Vel.X, b.Vel.X
	switch {
	case !a.fixed() && !b.fixed():
		a.Pos.X -= overlap / 2
		b.Pos.X += overlap / 2
		avg := (va + vb) / 2
		a.Vel.X = avg - (va-avg)*a.Bounce.X
		b.Vel.X = avg - (vb-avg)*b.Bounce.X
	case !a.fixed():
		a.Pos.X -= overlap
		a.Vel.X = vb - va*a.Bounce.X
	default:
		b.Pos.X += overlap
		b.Vel.X = va - vb*b.Bounce.X
	}
	w.place(a)
	w.place(b)
	return true
}
