package autotile

import (
	"tileforge/pkg/engine/grid"
	"tileforge/pkg/engine/tilemap"
)

// AutoTilemap layers an occupancy grid and an ordered ruleset collection
// over a tilemap. Occupancy edits are cheap and lazy; Bake recomputes the
// whole tile layer from current occupancy and rulesets.
//
// Ruleset order matters: ComputeTileID evaluates rulesets in insertion
// order and the first match wins, so author rulesets from most specific to
// least specific. Overlapping rulesets are allowed and resolved purely by
// that order.
type AutoTilemap struct {
	tilemap  *tilemap.Tilemap
	rulesets []Ruleset
	cells    []Cell
}

// New creates an autotilemap with every cell empty. The rulesets slice is
// taken over by the autotilemap and must not be mutated by the caller
// afterwards.
func New(tilesheet tilemap.TilesheetKey, tileSize tilemap.Size, width, height int, rulesets []Ruleset) *AutoTilemap {
	tm := tilemap.New(tilesheet, tileSize, width, height)

	return &AutoTilemap{
		tilemap:  tm,
		rulesets: rulesets,
		cells:    make([]Cell, tm.Width()*tm.Height()),
	}
}

// Width returns the number of columns.
func (a *AutoTilemap) Width() int {
	return a.tilemap.Width()
}

// Height returns the number of rows.
func (a *AutoTilemap) Height() int {
	return a.tilemap.Height()
}

// Tilesheet returns the tilesheet asset handle of the underlying tilemap.
func (a *AutoTilemap) Tilesheet() tilemap.TilesheetKey {
	return a.tilemap.Tilesheet()
}

// TileSize returns the pixel size of a single tile.
func (a *AutoTilemap) TileSize() tilemap.Size {
	return a.tilemap.TileSize()
}

// SetTile marks the cell at (x, y) as occupied.
func (a *AutoTilemap) SetTile(x, y int) error {
	return a.SetAutotile(x, y, CellTile)
}

// SetNone marks the cell at (x, y) as empty.
func (a *AutoTilemap) SetNone(x, y int) error {
	return a.SetAutotile(x, y, CellNone)
}

// SetAutotile sets the occupancy marker at (x, y). The tile layer is not
// recomputed; call Bake once a batch of edits is done.
func (a *AutoTilemap) SetAutotile(x, y int, cell Cell) error {
	index, err := grid.Index(x, y, a.Width(), a.Height())
	if err != nil {
		return err
	}
	a.cells[index] = cell
	return nil
}

// GetAutotile returns the occupancy marker at (x, y).
func (a *AutoTilemap) GetAutotile(x, y int) (Cell, error) {
	index, err := grid.Index(x, y, a.Width(), a.Height())
	if err != nil {
		return CellNone, err
	}
	return a.cells[index], nil
}

// AddRuleset appends a ruleset at the lowest priority. Duplicate tile IDs
// and overlapping patterns are not checked.
func (a *AutoTilemap) AddRuleset(ruleset Ruleset) {
	a.rulesets = append(a.rulesets, ruleset)
}

// GetRuleset returns the first ruleset with the given tile ID, or false if
// there is none.
func (a *AutoTilemap) GetRuleset(tileID tilemap.TileID) (*Ruleset, bool) {
	for i := range a.rulesets {
		if a.rulesets[i].TileID == tileID {
			return &a.rulesets[i], true
		}
	}
	return nil, false
}

// RemoveRuleset removes and returns the first ruleset with the given tile
// ID, or false if there is none. Relative order of the rest is preserved.
func (a *AutoTilemap) RemoveRuleset(tileID tilemap.TileID) (Ruleset, bool) {
	for i := range a.rulesets {
		if a.rulesets[i].TileID == tileID {
			removed := a.rulesets[i]
			a.rulesets = append(a.rulesets[:i], a.rulesets[i+1:]...)
			return removed, true
		}
	}
	return Ruleset{}, false
}

// ComputeTileID evaluates rulesets in insertion order against (x, y) and
// returns the tile ID of the first match. Returns EmptyTile when no
// ruleset matches or the cell itself is unoccupied.
func (a *AutoTilemap) ComputeTileID(x, y int) (tilemap.TileID, error) {
	if !grid.InBounds(x, y, a.Width(), a.Height()) {
		return tilemap.EmptyTile, &grid.BoundsError{X: x, Y: y, Width: a.Width(), Height: a.Height()}
	}

	for i := range a.rulesets {
		if a.rulesets[i].Matches(a.cells, a.Width(), a.Height(), x, y) {
			return a.rulesets[i].TileID, nil
		}
	}

	return tilemap.EmptyTile, nil
}

// GetTileID returns the baked tile at (x, y) from the underlying tilemap.
func (a *AutoTilemap) GetTileID(x, y int) (tilemap.TileID, error) {
	return a.tilemap.GetTile(x, y)
}

// Tiles exposes the baked tile layer in row-major order. Read-only.
func (a *AutoTilemap) Tiles() []tilemap.TileID {
	return a.tilemap.Tiles()
}

// Bake recomputes the tile ID of every cell from current occupancy and
// rulesets and writes it into the tile layer. Occupancy is never mutated,
// so baking twice without edits in between yields identical tiles. Stops
// at the first error, which cannot occur while the layers share dimensions.
func (a *AutoTilemap) Bake() error {
	for x := 0; x < a.Width(); x++ {
		for y := 0; y < a.Height(); y++ {
			id, err := a.ComputeTileID(x, y)
			if err != nil {
				return err
			}
			if err := a.tilemap.SetTile(x, y, id); err != nil {
				return err
			}
		}
	}

	return nil
}
