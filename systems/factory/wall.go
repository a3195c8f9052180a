package factory

import (
	"github.com/bggd/HaniwaSlayer/archetypes"
	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/bggd/HaniwaSlayer/leveldata"
	"github.com/bggd/HaniwaSlayer/world"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CreateWall spawns and registers a static body.
func CreateWall(w *world.World, pos geom.Vec, hitbox geom.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	components.Body.SetValue(wall, components.BodyData{
		ID:       w.GenerateID(),
		Position: pos,
		Hitbox:   hitbox,
	})
	w.Add(wall)
	return wall
}

// CreateWalls creates one wall per non-empty cell of grid, in row-major order.
// The map is centred on the world origin with row 0 at the top, and every wall
// gets a tile-sized hitbox centred on its position.
func CreateWalls(w *world.World, grid leveldata.TileGrid) []*donburi.Entry {
	tileW := float64(grid.TileWidth)
	tileH := float64(grid.TileHeight)
	hitbox := geom.Rect{X: -tileW / 2, Y: -tileH / 2, W: tileW, H: tileH}

	var walls []*donburi.Entry
	for ty := 0; ty < grid.Height; ty++ {
		for tx := 0; tx < grid.Width; tx++ {
			if grid.At(tx, ty) == 0 {
				continue
			}
			walls = append(walls, CreateWall(w, grid.TileOrigin(tx, ty), hitbox))
		}
	}

	w.Logger().Info("walls created",
		zap.Int("walls", len(walls)),
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
	)
	return walls
}
