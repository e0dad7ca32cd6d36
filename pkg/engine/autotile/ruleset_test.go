package autotile

import (
	"testing"
)

// occupancy builds a cells slice for a width x height grid with the given
// coordinates occupied.
func occupancy(width, height int, occupied ...[2]int) []Cell {
	cells := make([]Cell, width*height)
	for _, c := range occupied {
		cells[c[1]*width+c[0]] = CellTile
	}
	return cells
}

func anyPattern() [RulesetGridSize][RulesetGridSize]RulesetValue {
	return MustParsePattern(
		"?????",
		"?????",
		"?????",
		"?????",
		"?????",
	)
}

// isolatedPattern matches a cell whose four orthogonal neighbors are empty.
func isolatedPattern() [RulesetGridSize][RulesetGridSize]RulesetValue {
	return MustParsePattern(
		"?????",
		"??.??",
		"?.?.?",
		"??.??",
		"?????",
	)
}

func TestMatches_RequiresOccupiedCenter(t *testing.T) {
	r := &Ruleset{TileID: 1, Grid: anyPattern()}
	cells := occupancy(3, 3)

	if r.Matches(cells, 3, 3, 1, 1) {
		t.Error("ruleset matched an unoccupied cell")
	}

	cells = occupancy(3, 3, [2]int{1, 1})
	if !r.Matches(cells, 3, 3, 1, 1) {
		t.Error("all-wildcard ruleset did not match an occupied cell")
	}
}

func TestMatches_OutOfBoundsTarget(t *testing.T) {
	r := &Ruleset{TileID: 1, Grid: anyPattern()}
	cells := occupancy(3, 3, [2]int{1, 1})

	if r.Matches(cells, 3, 3, 3, 1) || r.Matches(cells, 3, 3, 1, -1) {
		t.Error("ruleset matched a target outside the grid")
	}
}

func TestMatches_AllWildcardIgnoresNeighbors(t *testing.T) {
	r := &Ruleset{TileID: 1, Grid: anyPattern()}

	// Every cell occupied and, separately, only the target occupied: the
	// all-wildcard pattern matches either way.
	full := make([]Cell, 9)
	for i := range full {
		full[i] = CellTile
	}
	if !r.Matches(full, 3, 3, 1, 1) {
		t.Error("all-wildcard ruleset did not match on a full grid")
	}
	if !r.Matches(occupancy(3, 3, [2]int{1, 1}), 3, 3, 1, 1) {
		t.Error("all-wildcard ruleset did not match on an otherwise empty grid")
	}
}

func TestMatches_CenterPatternValueIgnored(t *testing.T) {
	// A pattern demanding None at its own center still matches, since the
	// center cell is reserved for the (necessarily occupied) target.
	pattern := anyPattern()
	pattern[rulesetGridCenter][rulesetGridCenter] = ValueNone
	r := &Ruleset{TileID: 1, Grid: pattern}

	cells := occupancy(3, 3, [2]int{1, 1})
	if !r.Matches(cells, 3, 3, 1, 1) {
		t.Error("center pattern value was not ignored")
	}
}

func TestMatches_ConcreteExpectationFails(t *testing.T) {
	// Expect a tile directly right of center.
	pattern := anyPattern()
	pattern[rulesetGridCenter+1][rulesetGridCenter] = ValueTile
	r := &Ruleset{TileID: 1, Grid: pattern}

	cells := occupancy(5, 5, [2]int{2, 2})
	if r.Matches(cells, 5, 5, 2, 2) {
		t.Error("ruleset matched despite missing right neighbor")
	}

	cells = occupancy(5, 5, [2]int{2, 2}, [2]int{3, 2})
	if !r.Matches(cells, 5, 5, 2, 2) {
		t.Error("ruleset did not match with right neighbor present")
	}
}

func TestMatches_BoundaryNeverSatisfiesConcreteExpectation(t *testing.T) {
	// Target sits in the top-left corner of a 3x3 grid, so the pattern
	// cells left of and above center refer to positions off the map.
	cells := occupancy(3, 3, [2]int{0, 0})

	for _, value := range []RulesetValue{ValueNone, ValueTile} {
		pattern := anyPattern()
		pattern[rulesetGridCenter-1][rulesetGridCenter] = value
		r := &Ruleset{TileID: 1, Grid: pattern}
		if r.Matches(cells, 3, 3, 0, 0) {
			t.Errorf("concrete expectation %d at an off-map position matched", value)
		}
	}

	// The same position as a wildcard matches fine.
	pattern := anyPattern()
	pattern[rulesetGridCenter-1][rulesetGridCenter] = ValueAny
	r := &Ruleset{TileID: 1, Grid: pattern}
	if !r.Matches(cells, 3, 3, 0, 0) {
		t.Error("wildcard at an off-map position blocked the match")
	}
}

func TestMatches_OuterRingBeyondSmallGrid(t *testing.T) {
	// On a 3x3 grid the outer ring of the 5x5 pattern is always off-map.
	// A concrete expectation there can never be satisfied.
	pattern := anyPattern()
	pattern[0][0] = ValueNone
	r := &Ruleset{TileID: 1, Grid: pattern}

	cells := occupancy(3, 3, [2]int{1, 1})
	if r.Matches(cells, 3, 3, 1, 1) {
		t.Error("outer-ring expectation off the map matched")
	}
}

func TestParsePattern(t *testing.T) {
	pattern, err := ParsePattern(
		"?????",
		"??#??",
		"?.?.?",
		"??#??",
		"?????",
	)
	if err != nil {
		t.Fatalf("ParsePattern returned error: %v", err)
	}

	// Rows are visual (y), columns are x; the grid is [x][y].
	if pattern[2][1] != ValueTile {
		t.Errorf("pattern[2][1] = %d, want ValueTile", pattern[2][1])
	}
	if pattern[1][2] != ValueNone || pattern[3][2] != ValueNone {
		t.Error("expected ValueNone left and right of center")
	}
	if pattern[0][0] != ValueAny {
		t.Errorf("pattern[0][0] = %d, want ValueAny", pattern[0][0])
	}
}

func TestParsePattern_Invalid(t *testing.T) {
	if _, err := ParsePattern("?????", "?????"); err == nil {
		t.Error("expected error for wrong row count")
	}
	if _, err := ParsePattern("?????", "?????", "???", "?????", "?????"); err == nil {
		t.Error("expected error for short row")
	}
	if _, err := ParsePattern("?????", "?????", "??x??", "?????", "?????"); err == nil {
		t.Error("expected error for unknown cell glyph")
	}
}
