// Package tilemap provides dense tile-layer storage: a grid of tile IDs
// plus the tilesheet handle and tile pixel size a renderer needs to draw it.
// It knows nothing about how tiles are chosen; see pkg/engine/autotile.
package tilemap

import (
	"tileforge/pkg/engine/grid"
)

// TileID identifies a tile graphic within a tilesheet. Zero (EmptyTile)
// means no tile is placed, following the Tiled GID convention.
type TileID uint32

// EmptyTile is the TileID of an empty cell.
const EmptyTile TileID = 0

// TilesheetKey is an opaque handle to a tilesheet asset. Asset loading and
// resolution live outside the engine.
type TilesheetKey string

// Size is a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// Tilemap stores one tile layer in a flat row-major slice.
type Tilemap struct {
	width     int
	height    int
	tileSize  Size
	tilesheet TilesheetKey
	tiles     []TileID
}

// New creates a tilemap with every cell empty.
func New(tilesheet TilesheetKey, tileSize Size, width, height int) *Tilemap {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Tilemap{
		width:     width,
		height:    height,
		tileSize:  tileSize,
		tilesheet: tilesheet,
		tiles:     make([]TileID, width*height),
	}
}

// Width returns the number of columns.
func (t *Tilemap) Width() int {
	return t.width
}

// Height returns the number of rows.
func (t *Tilemap) Height() int {
	return t.height
}

// TileSize returns the pixel size of a single tile.
func (t *Tilemap) TileSize() Size {
	return t.tileSize
}

// Tilesheet returns the tilesheet asset handle.
func (t *Tilemap) Tilesheet() TilesheetKey {
	return t.tilesheet
}

// SetTile places id at (x, y). Use EmptyTile to clear the cell.
func (t *Tilemap) SetTile(x, y int, id TileID) error {
	index, err := grid.Index(x, y, t.width, t.height)
	if err != nil {
		return err
	}
	t.tiles[index] = id
	return nil
}

// GetTile returns the tile at (x, y), EmptyTile if the cell is empty.
func (t *Tilemap) GetTile(x, y int) (TileID, error) {
	index, err := grid.Index(x, y, t.width, t.height)
	if err != nil {
		return EmptyTile, err
	}
	return t.tiles[index], nil
}

// Tiles exposes the backing slice in row-major order. Callers must treat it
// as read-only; writes go through SetTile so bounds stay checked.
func (t *Tilemap) Tiles() []TileID {
	return t.tiles
}
