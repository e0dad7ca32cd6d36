// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tileforge/pkg/engine/autotile"
	"tileforge/pkg/engine/tilemap"
)

const mapDumpFilename = "map.txt"

// occupancySymbol returns the single-character symbol for an occupancy cell.
func occupancySymbol(cell autotile.Cell) rune {
	if cell == autotile.CellTile {
		return '#'
	}
	return '.'
}

// writeOccupancyGrid writes the occupancy layer as one character per cell.
func writeOccupancyGrid(w io.Writer, am *autotile.AutoTilemap) {
	for y := 0; y < am.Height(); y++ {
		for x := 0; x < am.Width(); x++ {
			cell, err := am.GetAutotile(x, y)
			if err != nil {
				fmt.Fprint(w, "?")
				continue
			}
			fmt.Fprintf(w, "%c", occupancySymbol(cell))
		}
		fmt.Fprintln(w)
	}
}

// writeTileGrid writes the baked layer as space-separated numeric tile IDs,
// 0 meaning no tile, so exact IDs survive the dump.
func writeTileGrid(w io.Writer, am *autotile.AutoTilemap) {
	for y := 0; y < am.Height(); y++ {
		for x := 0; x < am.Width(); x++ {
			if x > 0 {
				fmt.Fprint(w, " ")
			}
			id, err := am.GetTileID(x, y)
			if err != nil {
				fmt.Fprint(w, "?")
				continue
			}
			fmt.Fprintf(w, "%d", id)
		}
		fmt.Fprintln(w)
	}
}

// Dump writes a full debug dump of the autotilemap to w: metadata, legend,
// occupancy grid and baked tile-ID grid. Format is human- and LLM-readable
// (sections, key: value, consistent structure).
func Dump(w io.Writer, am *autotile.AutoTilemap) {
	fmt.Fprintln(w, "=== AUTOTILEMAP DUMP (occupancy, baked tiles) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_width: %d\n", am.Width())
	fmt.Fprintf(w, "grid_height: %d\n", am.Height())
	fmt.Fprintf(w, "tile_width_px: %d\n", am.TileSize().W)
	fmt.Fprintf(w, "tile_height_px: %d\n", am.TileSize().H)
	fmt.Fprintf(w, "tilesheet: %s\n", am.Tilesheet())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (occupancy symbols) ---")
	fmt.Fprintln(w, ". = empty  # = occupied")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Occupancy ---")
	writeOccupancyGrid(w, am)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Baked tile IDs (0 = no tile) ---")
	writeTileGrid(w, am)

	baked := 0
	for _, id := range am.Tiles() {
		if id != tilemap.EmptyTile {
			baked++
		}
	}
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "baked_cells: %d\n", baked)
}

// DumpToFile writes the debug dump to map.txt in the working directory and
// returns its absolute path.
func DumpToFile(am *autotile.AutoTilemap) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	Dump(f, am)
	return absPath, nil
}
