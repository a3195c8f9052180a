// Package world owns the entity registry and the axis-separated mover.
//
// Component storage lives in a donburi world (the arena). The registry keeps
// only the ids of the bodies that take part in collision, in the order they
// were added. Removal swaps the last id into the freed slot, so iteration order
// is not stable across removals.
//
// A World is not safe for concurrent use.
package world

import (
	"fmt"

	"github.com/bggd/HaniwaSlayer/components"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ID identifies a registered body. The zero ID is never handed out.
type ID = components.EntityID

type World struct {
	name  string
	arena donburi.World
	log   *zap.Logger

	lastID  ID
	live    []ID
	slots   map[ID]int
	handles map[ID]donburi.Entity
}

type Option func(*World)

// WithLogger sets the logger used for registry events and invariant failures.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithArena makes the world store its entities in an existing donburi world,
// typically the one an ecs pipeline already runs over.
func WithArena(arena donburi.World) Option {
	return func(w *World) {
		if arena != nil {
			w.arena = arena
		}
	}
}

func New(opts ...Option) *World {
	w := &World{
		name:    uuid.NewString(),
		log:     zap.NewNop(),
		slots:   make(map[ID]int),
		handles: make(map[ID]donburi.Entity),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.arena == nil {
		w.arena = donburi.NewWorld()
	}
	w.log = w.log.Named("world").With(zap.String("world", w.name))
	return w
}

// Name is a random identifier used to tell worlds apart in logs.
func (w *World) Name() string { return w.name }

// Logger returns the world's logger, already tagged with its name.
func (w *World) Logger() *zap.Logger { return w.log }

// Arena returns the donburi world holding the component data.
func (w *World) Arena() donburi.World { return w.arena }

// GenerateID returns the next id. Ids start at 1 and are never reused.
func (w *World) GenerateID() ID {
	w.lastID++
	return w.lastID
}

// Spawn creates an entry carrying cs in the arena. The body is not registered
// and has the zero id until the caller assigns one and calls Add.
func (w *World) Spawn(cs ...donburi.IComponentType) *donburi.Entry {
	hasBody := false
	for _, c := range cs {
		if c == components.Body {
			hasBody = true
			break
		}
	}
	if !hasBody {
		cs = append(cs, components.Body)
	}
	return w.arena.Entry(w.arena.Create(cs...))
}

// Add registers entry so it takes part in collision.
func (w *World) Add(entry *donburi.Entry) {
	id := components.Body.Get(entry).ID
	if id == 0 {
		w.fatal(fmt.Errorf("%w: add", ErrZeroID))
	}
	if _, ok := w.slots[id]; ok {
		w.fatal(fmt.Errorf("%w: id %d", ErrAlreadyRegistered, id))
	}

	w.slots[id] = len(w.live)
	w.live = append(w.live, id)
	w.handles[id] = entry.Entity()
	w.log.Debug("entity added", zap.Uint64("id", uint64(id)), zap.Int("live", len(w.live)))
}

// Remove unregisters entry. The entry stays in the arena until Destroy.
func (w *World) Remove(entry *donburi.Entry) {
	id := components.Body.Get(entry).ID
	if id == 0 {
		w.fatal(fmt.Errorf("%w: remove", ErrZeroID))
	}
	slot, ok := w.slots[id]
	if !ok {
		w.fatal(fmt.Errorf("%w: id %d", ErrNotRegistered, id))
	}

	last := len(w.live) - 1
	moved := w.live[last]
	w.live[slot] = moved
	w.slots[moved] = slot
	w.live = w.live[:last]
	delete(w.slots, id)
	delete(w.handles, id)
	w.log.Debug("entity removed", zap.Uint64("id", uint64(id)), zap.Int("live", len(w.live)))
}

// Destroy deletes an unregistered entry from the arena.
func (w *World) Destroy(entry *donburi.Entry) {
	id := components.Body.Get(entry).ID
	if id == 0 {
		w.fatal(fmt.Errorf("%w: destroy", ErrZeroID))
	}
	if _, ok := w.slots[id]; ok {
		w.fatal(fmt.Errorf("%w: id %d", ErrStillRegistered, id))
	}
	w.arena.Remove(entry.Entity())
	w.log.Debug("entity destroyed", zap.Uint64("id", uint64(id)))
}

// Len returns the number of registered bodies.
func (w *World) Len() int { return len(w.live) }

// Contains reports whether id is registered.
func (w *World) Contains(id ID) bool {
	_, ok := w.slots[id]
	return ok
}

// Entry returns the registered entry for id, or nil.
func (w *World) Entry(id ID) *donburi.Entry {
	e, ok := w.handles[id]
	if !ok {
		return nil
	}
	return w.arena.Entry(e)
}

// IDs returns a copy of the live set in iteration order.
func (w *World) IDs() []ID {
	out := make([]ID, len(w.live))
	copy(out, w.live)
	return out
}

// ForEachOther calls fn for every registered entry except the one with id
// self, in registry order, until fn returns false. fn must not add or remove
// entries.
func (w *World) ForEachOther(self ID, fn func(other *donburi.Entry) bool) {
	for _, id := range w.live {
		if id == self {
			continue
		}
		if !fn(w.arena.Entry(w.handles[id])) {
			return
		}
	}
}

func (w *World) mustBeRegistered(id ID) {
	if id == 0 {
		w.fatal(fmt.Errorf("%w: move", ErrZeroID))
	}
	if _, ok := w.slots[id]; !ok {
		w.fatal(fmt.Errorf("%w: id %d", ErrNotRegistered, id))
	}
}
