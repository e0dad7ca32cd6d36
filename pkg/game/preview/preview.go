// Package preview renders an autotilemap to the terminal: one pane for the
// occupancy layer, one for the baked tile layer, and a legend of the tile
// IDs in use. It shows what the autotiler decided, not tile pixels.
package preview

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"tileforge/pkg/engine/autotile"
	"tileforge/pkg/engine/terminal"
	"tileforge/pkg/engine/tilemap"
)

// Icon constants for the map panes
const (
	IconOccupied = "█"
	IconEmpty    = "·"
	IconNoTile   = " "
)

// tileGlyphs is the palette baked tile IDs are drawn from, cycled by ID.
var tileGlyphs = []rune{'#', '%', '&', '*', '+', '=', 'o', 'x', '@', '$'}

// Renderer is the terminal-based autotilemap view.
type Renderer struct {
	colorOccupied color.Style
	colorEmpty    color.Style
	colorTile     color.Style
	colorHeading  color.Style
	colorSubtle   color.Style
}

// New creates a new preview renderer.
func New() *Renderer {
	return &Renderer{}
}

// Init initializes the color styles.
func (r *Renderer) Init() {
	r.colorOccupied = color.Style{color.FgGreen, color.OpBold}
	r.colorEmpty = color.Style{color.FgGray}
	r.colorTile = color.Style{color.FgCyan, color.OpBold}
	r.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	r.colorSubtle = color.Style{color.FgGray}
}

// TileGlyph returns the glyph used to draw a baked tile ID.
func TileGlyph(id tilemap.TileID) rune {
	return tileGlyphs[int(id-1)%len(tileGlyphs)]
}

// Render draws the occupancy pane, the baked pane and the legend.
// Panes wider than the terminal are truncated on the right.
func (r *Renderer) Render(am *autotile.AutoTilemap) {
	cols := terminal.ClampWidth(am.Width())

	r.colorHeading.Println(gotext.Get("Occupancy"))
	for y := 0; y < am.Height(); y++ {
		for x := 0; x < cols; x++ {
			cell, err := am.GetAutotile(x, y)
			if err != nil {
				continue
			}
			if cell == autotile.CellTile {
				r.colorOccupied.Print(IconOccupied)
			} else {
				r.colorEmpty.Print(IconEmpty)
			}
		}
		fmt.Println()
	}
	fmt.Println()

	r.colorHeading.Println(gotext.Get("Baked tiles"))
	for y := 0; y < am.Height(); y++ {
		for x := 0; x < cols; x++ {
			id, err := am.GetTileID(x, y)
			if err != nil {
				continue
			}
			if id == tilemap.EmptyTile {
				r.colorEmpty.Print(IconNoTile)
			} else {
				r.colorTile.Printf("%c", TileGlyph(id))
			}
		}
		fmt.Println()
	}
	fmt.Println()

	r.renderLegend(am)
}

// renderLegend lists every distinct baked tile ID with its glyph.
func (r *Renderer) renderLegend(am *autotile.AutoTilemap) {
	seen := mapset.New[tilemap.TileID]()
	for _, id := range am.Tiles() {
		if id != tilemap.EmptyTile {
			seen.Put(id)
		}
	}
	if seen.Size() == 0 {
		r.colorSubtle.Println(gotext.Get("No tiles baked"))
		return
	}

	r.colorHeading.Println(gotext.Get("Legend"))
	seen.Each(func(id tilemap.TileID) {
		fmt.Printf("  %c = %s %d\n", TileGlyph(id), gotext.Get("tile"), id)
	})
}
