// Package geom holds the axis-aligned primitives shared by the collision core.
// It has no dependencies on ebiten or donburi so headless code and tests can
// use it directly.
package geom

// Vec is a world-space point. World Y grows upward.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add returns v translated by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Overlaps reports whether r and other share interior area. Rectangles whose
// edges only touch do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X+r.W > other.X &&
		r.Y+r.H > other.Y &&
		r.X < other.X+other.W &&
		r.Y < other.Y+other.H
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// At returns r shifted by the point p. Used to turn a hitbox into a hit area.
func (r Rect) At(p Vec) Rect {
	return r.Translate(p.X, p.Y)
}

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the maximum Y edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
