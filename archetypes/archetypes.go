package archetypes

import (
	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/tags"
	"github.com/bggd/HaniwaSlayer/world"
	"github.com/yohamta/donburi"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Player,
		components.Input,
		components.State,
		components.Animation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an unregistered entry with the archetype's components plus cs.
func (a *archetype) Spawn(w *world.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Spawn(all...)
}
