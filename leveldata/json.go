package leveldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// Tiled stores flip and rotation flags in the top bits of a gid.
const gidFlags = 0xE0000000

type jsonMap struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	TileWidth  int         `json:"tilewidth"`
	TileHeight int         `json:"tileheight"`
	Layers     []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Name string   `json:"name"`
	Data []uint32 `json:"data"`
}

// LoadJSON reads a Tiled JSON export and returns its first layer.
func LoadJSON(r io.Reader) (TileGrid, error) {
	var m jsonMap
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return TileGrid{}, fmt.Errorf("decode tile map: %w", err)
	}
	if len(m.Layers) == 0 {
		return TileGrid{}, errors.New("tile map has no layers")
	}

	grid := TileGrid{
		Width:      m.Width,
		Height:     m.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Tiles:      make([]uint32, len(m.Layers[0].Data)),
	}
	for i, gid := range m.Layers[0].Data {
		grid.Tiles[i] = gid &^ gidFlags
	}
	if err := grid.Validate(); err != nil {
		return TileGrid{}, err
	}
	return grid, nil
}

// Load picks the loader from the file extension (.tmx or .json).
func Load(fsys fs.FS, name, layer string) (*Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMXLevel(fsys, name, layer)
	case ".json":
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open level: %w", err)
		}
		defer f.Close()

		grid, err := LoadJSON(f)
		if err != nil {
			return nil, fmt.Errorf("load JSON %s: %w", name, err)
		}
		return &Level{Grid: grid}, nil
	default:
		return nil, fmt.Errorf("unsupported level format %q", name)
	}
}
