package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// SpawnGroup is the object group holding player spawn points.
const SpawnGroup = "PlayerSpawn"

// LoadTMX parses a TMX file and returns the named tile layer. An empty layer
// name selects the first tile layer. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath, layer string) (TileGrid, error) {
	lvl, err := LoadTMXLevel(fsys, tmxPath, layer)
	if err != nil {
		return TileGrid{}, err
	}
	return lvl.Grid, nil
}

// LoadTMXLevel is LoadTMX plus the points of the PlayerSpawn object group.
func LoadTMXLevel(fsys fs.FS, tmxPath, layer string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var src *tiled.Layer
	for _, l := range levelMap.Layers {
		if layer == "" || l.Name == layer {
			src = l
			break
		}
	}
	if src == nil {
		return nil, fmt.Errorf("load TMX %s: no tile layer %q", tmxPath, layer)
	}

	grid := TileGrid{
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Tiles:      make([]uint32, len(src.Tiles)),
	}
	for i, tile := range src.Tiles {
		if tile == nil || tile.IsNil() {
			continue
		}
		grid.Tiles[i] = tile.Tileset.FirstGID + tile.ID
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{Grid: grid}
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			lvl.Spawns = append(lvl.Spawns, grid.ToWorld(o.X, o.Y))
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(lvl.Spawns, func(i, j int) bool {
		return lvl.Spawns[i].X < lvl.Spawns[j].X
	})

	return lvl, nil
}
