package world

import (
	"math"
	"testing"

	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// flushStop snaps the mover against the obstacle and stops.
func flushStop(w *World) ResponderFunc {
	return func(self, other *donburi.Entry, axis Axis, dir float64) Result {
		w.Flush(self, other, axis, dir)
		return Stop
	}
}

func position(e *donburi.Entry) geom.Vec {
	return components.Body.Get(e).Position
}

func TestMoveLandsExactlyOnDelta(t *testing.T) {
	tests := []struct {
		name  string
		axis  Axis
		delta float64
		step  float64
	}{
		{"step does not divide", AxisX, 10, 3},
		{"negative", AxisX, -10, 3},
		{"vertical", AxisY, 10, 3},
		{"smaller than step", AxisX, 0.5, 1},
		{"single step", AxisY, -7, 7},
		{"fractional step", AxisX, 2.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			e := spawnBody(w, geom.Vec{X: 1, Y: 2}, box)

			hit := w.Move(e, tt.axis, tt.delta, tt.step, StopOnContact)
			assert.False(t, hit)

			want := geom.Vec{X: 1, Y: 2}
			if tt.axis == AxisX {
				want.X += tt.delta
			} else {
				want.Y += tt.delta
			}
			got := position(e)
			assert.InDelta(t, want.X, got.X, 1e-9)
			assert.InDelta(t, want.Y, got.Y, 1e-9)
		})
	}
}

func TestMoveZeroDelta(t *testing.T) {
	w := New()
	e := spawnBody(w, geom.Vec{}, box)
	// overlapping neighbour would report a contact on any probe
	spawnBody(w, geom.Vec{}, box)

	calls := 0
	hit := w.MoveX(e, 0, 1, ResponderFunc(func(_, _ *donburi.Entry, _ Axis, _ float64) Result {
		calls++
		return Stop
	}))
	assert.False(t, hit)
	assert.Zero(t, calls)
}

func TestMoveRejectsBadStep(t *testing.T) {
	for _, step := range []float64{0, -1, math.NaN()} {
		w := New()
		e := spawnBody(w, geom.Vec{}, box)
		requirePanicIs(t, ErrInvalidStep, func() { w.MoveX(e, 1, step, nil) })
	}
}

func TestMoveRejectsUnregistered(t *testing.T) {
	w := New()
	requirePanicIs(t, ErrZeroID, func() { w.MoveX(w.Spawn(), 1, 1, nil) })

	e := spawnBody(w, geom.Vec{}, box)
	w.Remove(e)
	requirePanicIs(t, ErrNotRegistered, func() { w.MoveY(e, 1, 1, nil) })
	requirePanicIs(t, ErrNotRegistered, func() { w.Probe(e, 0, -1) })
}

func TestMoveStopsAtFirstContact(t *testing.T) {
	w := New()
	e := spawnBody(w, geom.Vec{}, box)
	// wall spans [12.5, 20.5]; the ninth unit step would reach 13
	wall := spawnBody(w, geom.Vec{X: 16.5}, box)

	calls := 0
	var got *donburi.Entry
	hit := w.MoveX(e, 20, 1, ResponderFunc(func(self, other *donburi.Entry, axis Axis, dir float64) Result {
		calls++
		got = other
		assert.Equal(t, AxisX, axis)
		assert.Equal(t, 1.0, dir)
		return Stop
	}))

	assert.True(t, hit)
	assert.Equal(t, 1, calls)
	assert.Equal(t, wall.Entity(), got.Entity())
	assert.Equal(t, 8.0, position(e).X)
}

func TestMoveFlushOnContact(t *testing.T) {
	w := New()
	e := spawnBody(w, geom.Vec{}, box)
	wall := spawnBody(w, geom.Vec{X: 16.5}, box)

	assert.True(t, w.MoveX(e, 20, 1, flushStop(w)))
	assert.Equal(t, 8.5, position(e).X)
	assert.Equal(t, components.Body.Get(wall).HitArea().X, components.Body.Get(e).HitArea().Right())

	// resting flush is not a contact
	assert.Nil(t, w.Probe(e, 0, 0))
	// but pushing on is
	assert.True(t, w.MoveX(e, 1, 1, flushStop(w)))
	assert.Equal(t, 8.5, position(e).X)
}

func TestFlushAllDirections(t *testing.T) {
	hitbox := geom.Rect{X: -2, Y: -3, W: 4, H: 6}
	tests := []struct {
		name  string
		start geom.Vec
		axis  Axis
		delta float64
		want  geom.Vec
	}{
		{"right", geom.Vec{X: -20}, AxisX, 40, geom.Vec{X: -6}},
		{"left", geom.Vec{X: 20}, AxisX, -40, geom.Vec{X: 6}},
		{"up", geom.Vec{Y: -20}, AxisY, 40, geom.Vec{Y: -7}},
		{"down", geom.Vec{Y: 20}, AxisY, -40, geom.Vec{Y: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			spawnBody(w, geom.Vec{}, box)
			e := spawnBody(w, tt.start, hitbox)

			assert.True(t, w.Move(e, tt.axis, tt.delta, 1, flushStop(w)))
			assert.Equal(t, tt.want, position(e))
			assert.False(t, components.Body.Get(e).HitArea().Overlaps(box))
		})
	}
}

func TestMoveContinuePassesThrough(t *testing.T) {
	w := New()
	e := spawnBody(w, geom.Vec{}, box)
	spawnBody(w, geom.Vec{X: 16}, geom.Rect{X: 0, Y: -4, W: 1, H: 8})

	calls := 0
	hit := w.MoveX(e, 40, 1, ResponderFunc(func(_, _ *donburi.Entry, _ Axis, _ float64) Result {
		calls++
		return Continue
	}))

	assert.True(t, hit)
	assert.Positive(t, calls)
	assert.Equal(t, 40.0, position(e).X)
}

func TestMoveContinueStillStopsOnLaterObstacle(t *testing.T) {
	w := New()
	e := spawnBody(w, geom.Vec{}, box)
	ghost := spawnBody(w, geom.Vec{X: 10}, box)
	spawnBody(w, geom.Vec{X: 30}, box)

	hit := w.MoveX(e, 40, 1, ResponderFunc(func(self, other *donburi.Entry, axis Axis, dir float64) Result {
		if other.Entity() == ghost.Entity() {
			return Continue
		}
		w.Flush(self, other, axis, dir)
		return Stop
	}))

	assert.True(t, hit)
	assert.Equal(t, 22.0, position(e).X)
}

func TestMoveTieBreakFollowsRegistryOrder(t *testing.T) {
	w := New()
	e := spawnBody(w, geom.Vec{}, box)
	// both obstacles are hit by the same increment; the farther one was added first
	far := spawnBody(w, geom.Vec{X: 12.75}, box)
	spawnBody(w, geom.Vec{X: 12.25}, box)

	var first *donburi.Entry
	w.MoveX(e, 20, 1, ResponderFunc(func(_, other *donburi.Entry, _ Axis, _ float64) Result {
		first = other
		return Stop
	}))
	require.NotNil(t, first)
	assert.Equal(t, far.Entity(), first.Entity())
}

func TestTouchingIsNotContact(t *testing.T) {
	hitbox := geom.Rect{X: -2, Y: -3, W: 4, H: 6}

	t.Run("sliding along a floor", func(t *testing.T) {
		w := New()
		spawnBody(w, geom.Vec{}, box)
		e := spawnBody(w, geom.Vec{Y: 7}, hitbox)

		assert.False(t, w.MoveX(e, 10, 1, StopOnContact))
		assert.Equal(t, 10.0, position(e).X)
	})

	t.Run("sliding along a wall", func(t *testing.T) {
		w := New()
		spawnBody(w, geom.Vec{}, box)
		e := spawnBody(w, geom.Vec{X: 6}, hitbox)

		assert.False(t, w.MoveY(e, -10, 1, StopOnContact))
		assert.Equal(t, -10.0, position(e).Y)
	})

	t.Run("epsilon overlap is contact", func(t *testing.T) {
		w := New()
		spawnBody(w, geom.Vec{}, box)
		e := spawnBody(w, geom.Vec{Y: 7 - 1.0/1024}, hitbox)

		assert.True(t, w.MoveX(e, 10, 1, StopOnContact))
		assert.Equal(t, 0.0, position(e).X)
	})
}

func TestProbe(t *testing.T) {
	w := New()
	floor := spawnBody(w, geom.Vec{}, box)
	e := spawnBody(w, geom.Vec{Y: 8}, box)

	assert.Nil(t, w.Probe(e, 0, 0))
	got := w.Probe(e, 0, -0.1)
	require.NotNil(t, got)
	assert.Equal(t, floor.Entity(), got.Entity())
	assert.Nil(t, w.Probe(e, 100, -0.1))
}

func TestMoveRejectsNonFiniteDelta(t *testing.T) {
	for _, delta := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		w := New()
		e := spawnBody(w, geom.Vec{}, box)
		requirePanicIs(t, ErrInvalidDelta, func() { w.MoveX(e, delta, 1, nil) })
	}
}

var unit = geom.Rect{W: 1, H: 1}

func TestFlushStopsAtNearestObstacle(t *testing.T) {
	w := New()
	// both walls are reached by the first increment; the farther one was added first
	far := spawnBody(w, geom.Vec{X: 0.75}, unit)
	near := spawnBody(w, geom.Vec{X: 0.25}, unit)
	e := spawnBody(w, geom.Vec{X: -1}, unit)

	var first *donburi.Entry
	hit := w.MoveX(e, 5, 1, ResponderFunc(func(self, other *donburi.Entry, axis Axis, dir float64) Result {
		first = other
		w.Flush(self, other, axis, dir)
		return Stop
	}))

	assert.True(t, hit)
	require.NotNil(t, first)
	assert.Equal(t, far.Entity(), first.Entity())
	assert.Equal(t, -0.75, position(e).X)
	assert.False(t, components.Body.Get(e).HitArea().Overlaps(components.Body.Get(near).HitArea()))
}

func assertNoOverlaps(t *testing.T, w *World) {
	t.Helper()
	ids := w.IDs()
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			ra := components.Body.Get(w.Entry(a)).HitArea()
			rb := components.Body.Get(w.Entry(b)).HitArea()
			assert.False(t, ra.Overlaps(rb), "bodies %d and %d overlap: %+v %+v", a, b, ra, rb)
		}
	}
}

func TestMoveSequenceNeverInterpenetrates(t *testing.T) {
	w := New()
	spawnBody(w, geom.Vec{}, geom.Rect{X: -8, Y: -1, W: 16, H: 1}) // floor
	spawnBody(w, geom.Vec{}, geom.Rect{X: -8, Y: 3, W: 16, H: 4})  // ceiling
	spawnBody(w, geom.Vec{}, geom.Rect{X: -7, Y: 0, W: 2, H: 3})   // left wall
	spawnBody(w, geom.Vec{}, geom.Rect{X: -4, Y: 1.75, W: 1, H: 0.5})
	spawnBody(w, geom.Vec{X: 1.5}, unit)  // far, added before near
	spawnBody(w, geom.Vec{X: 0.25}, unit) // near
	e := spawnBody(w, geom.Vec{X: -1}, unit)
	assertNoOverlaps(t, w)

	// the step is larger than the gap between near and far
	moves := []struct {
		axis  Axis
		delta float64
		want  geom.Vec
	}{
		{AxisX, 5, geom.Vec{X: -0.75}},
		{AxisY, 5, geom.Vec{X: -0.75, Y: 2}},
		{AxisX, -5, geom.Vec{X: -3, Y: 2}},
		{AxisY, -5, geom.Vec{X: -3}},
		{AxisX, -5, geom.Vec{X: -5}},
		{AxisX, 8, geom.Vec{X: -0.75}},
	}
	for i, m := range moves {
		assert.True(t, w.Move(e, m.axis, m.delta, 2, flushStop(w)), "move %d", i)
		assert.Equal(t, m.want, position(e), "move %d", i)
		assertNoOverlaps(t, w)
	}
}
