// Package autotile selects tile graphics automatically. Callers mark cells
// as occupied or empty, author rulesets describing neighborhood patterns,
// and Bake writes the matching tile ID for every cell into the underlying
// tilemap layer.
package autotile

import (
	"fmt"

	"tileforge/pkg/engine/grid"
	"tileforge/pkg/engine/tilemap"
)

// Cell is the occupancy marker for one grid cell. Occupancy is independent
// of which tile graphic is ultimately shown there.
type Cell uint8

const (
	// CellNone marks an empty cell.
	CellNone Cell = iota
	// CellTile marks an occupied cell.
	CellTile
)

// RulesetValue is one expectation inside a ruleset pattern grid.
type RulesetValue uint8

const (
	// ValueNone expects the neighbor to be empty.
	ValueNone RulesetValue = iota
	// ValueTile expects the neighbor to be occupied.
	ValueTile
	// ValueAny matches regardless of the neighbor's state.
	ValueAny
)

// RulesetGridSize is the fixed edge length of a ruleset pattern grid.
const RulesetGridSize = 5

const rulesetGridCenter = RulesetGridSize / 2

// Ruleset pairs a tile ID with the 5x5 neighborhood pattern that selects it.
//
// Grid is indexed [x][y], so a pattern literal reads rotated 90 degrees
// clockwise on the page; ParsePattern accepts patterns in visual row order
// instead. Most rulesets only constrain the inner 3x3 ring; leave the outer
// ring ValueAny when the wider neighborhood is irrelevant.
//
// The center cell of the grid is never read. It stands for the cell being
// evaluated, which must be occupied for any ruleset to match at all.
type Ruleset struct {
	TileID tilemap.TileID
	Grid   [RulesetGridSize][RulesetGridSize]RulesetValue
}

// Matches reports whether this ruleset applies to the occupied cell at
// (x, y), given the occupancy layer and its dimensions.
//
// Neighbors outside the map resolve to ValueAny, and the comparison is
// pattern value against resolved value. Since pattern-side ValueAny is
// skipped before any lookup, a concrete ValueNone or ValueTile expectation
// can never be satisfied by an out-of-bounds neighbor.
func (r *Ruleset) Matches(cells []Cell, width, height, x, y int) bool {
	index, err := grid.Index(x, y, width, height)
	if err != nil {
		return false
	}
	if cells[index] != CellTile {
		return false
	}

	for rx := 0; rx < RulesetGridSize; rx++ {
		for ry := 0; ry < RulesetGridSize; ry++ {
			if rx == rulesetGridCenter && ry == rulesetGridCenter {
				continue
			}
			if r.Grid[rx][ry] == ValueAny {
				continue
			}

			actual := resolveValue(cells, width, height, x-rulesetGridCenter+rx, y-rulesetGridCenter+ry)
			if r.Grid[rx][ry] != actual {
				return false
			}
		}
	}

	return true
}

// resolveValue maps the occupancy at (x, y) to a RulesetValue. Coordinates
// outside the map resolve to ValueAny.
func resolveValue(cells []Cell, width, height, x, y int) RulesetValue {
	if x < 0 || y < 0 {
		return ValueAny
	}
	index, err := grid.Index(x, y, width, height)
	if err != nil {
		return ValueAny
	}
	if cells[index] == CellTile {
		return ValueTile
	}
	return ValueNone
}

// ParsePattern builds a pattern grid from five 5-rune strings written in
// visual row order, top to bottom:
//
//	'.' empty   '#' occupied   '?' any
//
// The result is transposed into the [x][y] layout Ruleset.Grid uses.
func ParsePattern(rows ...string) ([RulesetGridSize][RulesetGridSize]RulesetValue, error) {
	var pattern [RulesetGridSize][RulesetGridSize]RulesetValue

	if len(rows) != RulesetGridSize {
		return pattern, fmt.Errorf("pattern needs %d rows, got %d", RulesetGridSize, len(rows))
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != RulesetGridSize {
			return pattern, fmt.Errorf("pattern row %d needs %d cells, got %d", y, RulesetGridSize, len(runes))
		}
		for x, c := range runes {
			switch c {
			case '.':
				pattern[x][y] = ValueNone
			case '#':
				pattern[x][y] = ValueTile
			case '?':
				pattern[x][y] = ValueAny
			default:
				return pattern, fmt.Errorf("pattern row %d: unknown cell %q", y, c)
			}
		}
	}

	return pattern, nil
}

// MustParsePattern is ParsePattern for static patterns; it panics on error.
func MustParsePattern(rows ...string) [RulesetGridSize][RulesetGridSize]RulesetValue {
	pattern, err := ParsePattern(rows...)
	if err != nil {
		panic(err)
	}
	return pattern
}
