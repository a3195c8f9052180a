package world

import (
	"fmt"
	"math"

	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/gamemath"
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/yohamta/donburi"
)

// moveTolerance is how close the travelled distance must get to the requested
// one before a move counts as complete.
const moveTolerance = 1e-9

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Result tells the mover what to do after a contact.
type Result int

const (
	// Stop halts the move. The pending increment is dropped; any position
	// change made by the responder is kept.
	Stop Result = iota
	// Continue ignores this obstacle and keeps checking the rest.
	Continue
)

// A Responder is told about each contact found while moving. dir is the sign
// of the travel along axis.
type Responder interface {
	OnCollide(self, other *donburi.Entry, axis Axis, dir float64) Result
}

// ResponderFunc adapts a function to a Responder.
type ResponderFunc func(self, other *donburi.Entry, axis Axis, dir float64) Result

func (f ResponderFunc) OnCollide(self, other *donburi.Entry, axis Axis, dir float64) Result {
	return f(self, other, axis, dir)
}

// StopOnContact stops at the first contact and leaves the body where it was.
var StopOnContact = ResponderFunc(func(_, _ *donburi.Entry, _ Axis, _ float64) Result {
	return Stop
})

// Move advances entry by delta along axis in increments of at most step,
// checking every other registered body after each increment. The last
// increment is shortened so the body never travels past delta. A nil
// responder behaves like StopOnContact.
//
// Move reports whether any contact was found.
func (w *World) Move(entry *donburi.Entry, axis Axis, delta, step float64, r Responder) bool {
	if !(step > 0) {
		w.fatal(fmt.Errorf("%w: got %v", ErrInvalidStep, step))
	}
	w.mustBeRegistered(components.Body.Get(entry).ID)
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		w.fatal(fmt.Errorf("%w: got %v", ErrInvalidDelta, delta))
	}
	if delta == 0 {
		return false
	}
	if r == nil {
		r = StopOnContact
	}

	dir := gamemath.Sign(delta)
	want := math.Abs(delta)
	total := 0.0
	hit := false
	for want-total > moveTolerance {
		inc := min(step, want-total)
		body := components.Body.Get(entry)
		probe := translateAlong(body.HitArea(), axis, dir*inc)

		stopped := false
		w.ForEachOther(body.ID, func(other *donburi.Entry) bool {
			if !probe.Overlaps(components.Body.Get(other).HitArea()) {
				return true
			}
			hit = true
			if r.OnCollide(entry, other, axis, dir) == Stop {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return true
		}

		// the responder may have moved the body, so fetch it again
		body = components.Body.Get(entry)
		if axis == AxisX {
			body.Position.X += dir * inc
		} else {
			body.Position.Y += dir * inc
		}
		total += inc
	}
	return hit
}

// MoveX moves entry horizontally. See Move.
func (w *World) MoveX(entry *donburi.Entry, delta, step float64, r Responder) bool {
	return w.Move(entry, AxisX, delta, step, r)
}

// MoveY moves entry vertically. See Move.
func (w *World) MoveY(entry *donburi.Entry, delta, step float64, r Responder) bool {
	return w.Move(entry, AxisY, delta, step, r)
}

// Flush snaps self against the near edge of other for travel in direction dir
// along axis, so the two hit areas touch without overlapping. When another
// body lies between self and that edge, self stops at the nearest one
// instead, so a single increment that reached several obstacles never leaves
// self inside any of them.
func (w *World) Flush(self, other *donburi.Entry, axis Axis, dir float64) {
	body := components.Body.Get(self)
	area := body.HitArea()
	edge := nearEdge(components.Body.Get(other).HitArea(), axis, dir)

	w.ForEachOther(body.ID, func(e *donburi.Entry) bool {
		if e.Entity() == other.Entity() {
			return true
		}
		if c := components.Body.Get(e).HitArea(); between(area, c, axis, dir, edge) {
			edge = nearEdge(c, axis, dir)
		}
		return true
	})

	switch {
	case axis == AxisX && dir > 0:
		body.Position.X = edge - body.Hitbox.Right()
	case axis == AxisX:
		body.Position.X = edge - body.Hitbox.X
	case dir > 0:
		body.Position.Y = edge - body.Hitbox.Top()
	default:
		body.Position.Y = edge - body.Hitbox.Y
	}
}

// nearEdge is the side of r met first when travelling in direction dir.
func nearEdge(r geom.Rect, axis Axis, dir float64) float64 {
	switch {
	case axis == AxisX && dir > 0:
		return r.X
	case axis == AxisX:
		return r.Right()
	case dir > 0:
		return r.Y
	default:
		return r.Top()
	}
}

// between reports whether c sits across the path of area and its near edge
// comes before edge. Bodies area already overlaps are not in the way.
func between(area, c geom.Rect, axis Axis, dir, edge float64) bool {
	if axis == AxisX {
		if !(area.Y < c.Top() && c.Y < area.Top()) {
			return false
		}
		if dir > 0 {
			return c.X >= area.Right() && c.X < edge
		}
		return c.Right() <= area.X && c.Right() > edge
	}
	if !(area.X < c.Right() && c.X < area.Right()) {
		return false
	}
	if dir > 0 {
		return c.Y >= area.Top() && c.Y < edge
	}
	return c.Top() <= area.Y && c.Top() > edge
}

// Probe returns the first registered body, in registry order, overlapping
// entry's hit area shifted by (dx, dy). It returns nil when nothing overlaps.
func (w *World) Probe(entry *donburi.Entry, dx, dy float64) *donburi.Entry {
	body := components.Body.Get(entry)
	w.mustBeRegistered(body.ID)

	area := body.HitArea().Translate(dx, dy)
	var found *donburi.Entry
	w.ForEachOther(body.ID, func(other *donburi.Entry) bool {
		if area.Overlaps(components.Body.Get(other).HitArea()) {
			found = other
			return false
		}
		return true
	})
	return found
}

func translateAlong(r geom.Rect, axis Axis, d float64) geom.Rect {
	if axis == AxisX {
		return r.Translate(d, 0)
	}
	return r.Translate(0, d)
}
