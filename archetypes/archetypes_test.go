package archetypes

import (
	"testing"

	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/tags"
	"github.com/bggd/HaniwaSlayer/world"
	"github.com/stretchr/testify/assert"
)

func TestSpawn(t *testing.T) {
	w := world.New()

	wall := Wall.Spawn(w)
	assert.True(t, wall.HasComponent(tags.Wall))
	assert.True(t, wall.HasComponent(components.Body))
	assert.False(t, wall.HasComponent(components.Player))

	player := Player.Spawn(w)
	assert.True(t, player.HasComponent(tags.Player))
	assert.True(t, player.HasComponent(components.Player))
	assert.True(t, player.HasComponent(components.Input))
	assert.True(t, player.HasComponent(components.State))
	assert.True(t, player.HasComponent(components.Animation))

	// spawning does not register
	assert.Zero(t, w.Len())
}
