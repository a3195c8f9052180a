package world

import (
	"errors"
	"testing"

	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var box = geom.Rect{X: -4, Y: -4, W: 8, H: 8}

// spawnBody creates, numbers and registers a body.
func spawnBody(w *World, pos geom.Vec, hitbox geom.Rect) *donburi.Entry {
	e := w.Spawn(components.Body)
	components.Body.SetValue(e, components.BodyData{
		ID:       w.GenerateID(),
		Position: pos,
		Hitbox:   hitbox,
	})
	w.Add(e)
	return e
}

func idOf(e *donburi.Entry) ID {
	return components.Body.Get(e).ID
}

// requirePanicIs runs fn and checks it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}

func TestGenerateID(t *testing.T) {
	w := New()
	assert.Equal(t, ID(1), w.GenerateID())
	assert.Equal(t, ID(2), w.GenerateID())
	assert.Equal(t, ID(3), w.GenerateID())

	// counters are per world
	other := New()
	assert.Equal(t, ID(1), other.GenerateID())
	assert.NotEqual(t, w.Name(), other.Name())
}

func TestSpawnAddsBody(t *testing.T) {
	w := New()
	e := w.Spawn()
	require.True(t, e.HasComponent(components.Body))
	assert.Equal(t, ID(0), idOf(e))
	assert.Equal(t, 0, w.Len())
}

func TestAddAndRemove(t *testing.T) {
	w := New()
	a := spawnBody(w, geom.Vec{}, box)
	b := spawnBody(w, geom.Vec{X: 10}, box)
	c := spawnBody(w, geom.Vec{X: 20}, box)

	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []ID{idOf(a), idOf(b), idOf(c)}, w.IDs())
	assert.Equal(t, b.Entity(), w.Entry(idOf(b)).Entity())

	w.Remove(a)

	// the last id fills the freed slot
	assert.Equal(t, []ID{idOf(c), idOf(b)}, w.IDs())
	assert.False(t, w.Contains(idOf(a)))
	assert.True(t, w.Contains(idOf(b)))
	assert.Nil(t, w.Entry(idOf(a)))

	w.Remove(b)
	w.Remove(c)
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.IDs())
}

func TestRemoveThenAddAgain(t *testing.T) {
	w := New()
	a := spawnBody(w, geom.Vec{}, box)
	w.Remove(a)
	w.Add(a)
	assert.True(t, w.Contains(idOf(a)))
}

func TestIDsIsACopy(t *testing.T) {
	w := New()
	a := spawnBody(w, geom.Vec{}, box)
	ids := w.IDs()
	ids[0] = 99
	assert.Equal(t, []ID{idOf(a)}, w.IDs())
}

func TestInvariantViolations(t *testing.T) {
	tests := []struct {
		name   string
		target error
		run    func(w *World)
	}{
		{"add zero id", ErrZeroID, func(w *World) {
			w.Add(w.Spawn(components.Body))
		}},
		{"add twice", ErrAlreadyRegistered, func(w *World) {
			w.Add(spawnBody(w, geom.Vec{}, box))
		}},
		{"remove zero id", ErrZeroID, func(w *World) {
			w.Remove(w.Spawn(components.Body))
		}},
		{"remove unregistered", ErrNotRegistered, func(w *World) {
			e := spawnBody(w, geom.Vec{}, box)
			w.Remove(e)
			w.Remove(e)
		}},
		{"destroy zero id", ErrZeroID, func(w *World) {
			w.Destroy(w.Spawn(components.Body))
		}},
		{"destroy registered", ErrStillRegistered, func(w *World) {
			w.Destroy(spawnBody(w, geom.Vec{}, box))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			requirePanicIs(t, tt.target, func() { tt.run(w) })
		})
	}
}

func TestInvariantViolationIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	w := New(WithLogger(zap.New(core)))

	requirePanicIs(t, ErrZeroID, func() { w.Add(w.Spawn()) })

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "invariant violated", entries[0].Message)
	assert.Equal(t, w.Name(), entries[0].ContextMap()["world"])
}

func TestDestroy(t *testing.T) {
	w := New()
	e := spawnBody(w, geom.Vec{}, box)
	w.Remove(e)
	w.Destroy(e)
	assert.False(t, w.Arena().Valid(e.Entity()))
}

func TestWithArenaSharesStorage(t *testing.T) {
	arena := donburi.NewWorld()
	w := New(WithArena(arena))
	e := spawnBody(w, geom.Vec{}, box)
	assert.True(t, arena.Valid(e.Entity()))
	assert.Equal(t, 1, arena.Len())
}

func TestForEachOther(t *testing.T) {
	w := New()

	calls := 0
	w.ForEachOther(1, func(*donburi.Entry) bool { calls++; return true })
	assert.Zero(t, calls, "empty registry")

	a := spawnBody(w, geom.Vec{}, box)
	b := spawnBody(w, geom.Vec{X: 10}, box)
	c := spawnBody(w, geom.Vec{X: 20}, box)

	var seen []ID
	w.ForEachOther(idOf(a), func(other *donburi.Entry) bool {
		seen = append(seen, idOf(other))
		return true
	})
	assert.Equal(t, []ID{idOf(b), idOf(c)}, seen)

	seen = nil
	w.ForEachOther(idOf(b), func(other *donburi.Entry) bool {
		seen = append(seen, idOf(other))
		return false
	})
	assert.Equal(t, []ID{idOf(a)}, seen)

	calls = 0
	lone := New()
	only := spawnBody(lone, geom.Vec{}, box)
	lone.ForEachOther(idOf(only), func(*donburi.Entry) bool { calls++; return true })
	assert.Zero(t, calls, "self is skipped")
}
