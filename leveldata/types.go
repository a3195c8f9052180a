// Package leveldata loads tile maps into plain grids. It has no dependencies
// on ebiten or donburi, pure data only.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/bggd/HaniwaSlayer/geom"
)

// TileGrid is one tile layer. Tiles is row-major with row 0 at the top of the
// map; zero means an empty cell.
type TileGrid struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Tiles      []uint32
}

// Level is a loaded map: its collision grid plus any spawn points.
type Level struct {
	Grid   TileGrid
	Spawns []geom.Vec // world space, sorted left to right
}

// Validate checks that the grid's shape is consistent.
func (g TileGrid) Validate() error {
	var errs []error
	if g.Width <= 0 || g.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size must be positive, got %dx%d", g.Width, g.Height))
	}
	if g.TileWidth <= 0 || g.TileHeight <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %dx%d", g.TileWidth, g.TileHeight))
	}
	if len(g.Tiles) != g.Width*g.Height {
		errs = append(errs, fmt.Errorf("layer has %d tiles, want %d", len(g.Tiles), g.Width*g.Height))
	}
	return errors.Join(errs...)
}

// At returns the tile at column tx and row ty, or 0 outside the grid.
func (g TileGrid) At(tx, ty int) uint32 {
	if tx < 0 || ty < 0 || tx >= g.Width || ty >= g.Height {
		return 0
	}
	return g.Tiles[ty*g.Width+tx]
}

// Centered looks a tile up with the grid centre as origin: on a 2x2 map the
// top-left tile is (-1, -1). The second result is false outside the grid.
func (g TileGrid) Centered(x, y int) (uint32, bool) {
	tx := x + g.Width/2
	ty := y + g.Height/2
	if tx < 0 || ty < 0 || tx >= g.Width || ty >= g.Height {
		return 0, false
	}
	return g.Tiles[ty*g.Width+tx], true
}

// ToWorld converts a map pixel position (origin top-left, Y down) to world
// space (origin at the map centre, Y up).
func (g TileGrid) ToWorld(px, py float64) geom.Vec {
	offsetX := float64(g.Width*g.TileWidth) / 2
	offsetY := float64(g.Height*g.TileHeight) / 2
	return geom.Vec{
		X: px - offsetX,
		Y: -(py - offsetY),
	}
}

// TileOrigin returns the world position of the cell at column tx and row ty.
func (g TileGrid) TileOrigin(tx, ty int) geom.Vec {
	return g.ToWorld(float64(tx*g.TileWidth), float64(ty*g.TileHeight))
}
