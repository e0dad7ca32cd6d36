package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"tileforge/pkg/engine/autotile"
	"tileforge/pkg/engine/tilemap"
	"tileforge/pkg/game/devtools"
	"tileforge/pkg/game/preview"
)

// Demo tile IDs, most specific first. Authoring order is match priority.
const (
	tileIsolated tilemap.TileID = iota + 1
	tileInterior
	tileLeftEdge
	tileRightEdge
	tileTopEdge
	tileBottomEdge
	tileFallback
)

// demoRulesets classifies occupied cells by their orthogonal neighbors.
func demoRulesets() []autotile.Ruleset {
	return []autotile.Ruleset{
		{TileID: tileIsolated, Grid: autotile.MustParsePattern(
			"?????",
			"??.??",
			"?.?.?",
			"??.??",
			"?????",
		)},
		{TileID: tileInterior, Grid: autotile.MustParsePattern(
			"?????",
			"??#??",
			"?#?#?",
			"??#??",
			"?????",
		)},
		{TileID: tileLeftEdge, Grid: autotile.MustParsePattern(
			"?????",
			"?????",
			"?.?#?",
			"?????",
			"?????",
		)},
		{TileID: tileRightEdge, Grid: autotile.MustParsePattern(
			"?????",
			"?????",
			"?#?.?",
			"?????",
			"?????",
		)},
		{TileID: tileTopEdge, Grid: autotile.MustParsePattern(
			"?????",
			"??.??",
			"?????",
			"??#??",
			"?????",
		)},
		{TileID: tileBottomEdge, Grid: autotile.MustParsePattern(
			"?????",
			"??#??",
			"?????",
			"??.??",
			"?????",
		)},
		{TileID: tileFallback, Grid: autotile.MustParsePattern(
			"?????",
			"?????",
			"?????",
			"?????",
			"?????",
		)},
	}
}

// scatterIsland fills an elliptical island with a noisy shoreline.
func scatterIsland(am *autotile.AutoTilemap, rng *rand.Rand) error {
	cx := float64(am.Width()) / 2
	cy := float64(am.Height()) / 2

	for x := 0; x < am.Width(); x++ {
		for y := 0; y < am.Height(); y++ {
			dx := (float64(x) - cx) / cx
			dy := (float64(y) - cy) / cy
			dist := dx*dx + dy*dy
			if dist < 0.55+rng.Float64()*0.15 {
				if err := am.SetTile(x, y); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func main() {
	width := flag.Int("width", 24, "map width in tiles")
	height := flag.Int("height", 12, "map height in tiles")
	seed := flag.Int64("seed", 1, "island shape seed")
	dump := flag.Bool("dump", false, "also write a debug dump to map.txt")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	am := autotile.New("terrain.png", tilemap.Size{W: 16, H: 16}, *width, *height, demoRulesets())
	if err := scatterIsland(am, rng); err != nil {
		fmt.Fprintf(os.Stderr, "failed to place island: %v\n", err)
		os.Exit(1)
	}

	if err := am.Bake(); err != nil {
		fmt.Fprintf(os.Stderr, "bake failed: %v\n", err)
		os.Exit(1)
	}

	r := preview.New()
	r.Init()
	r.Render(am)

	if *dump {
		path, err := devtools.DumpToFile(am)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dump failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
