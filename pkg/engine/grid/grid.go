// Package grid provides the flat-storage indexing primitive shared by every
// 2D layer in the engine. Layers store their cells in a single row-major
// slice; Index is the one place that maps (x, y) coordinates onto it.
package grid

import "fmt"

// BoundsError reports a coordinate outside [0, width) x [0, height).
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coordinate (%d, %d) out of bounds for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// Index returns the flat slice index for (x, y) in a width x height grid
// stored in row-major order. Returns a *BoundsError if the coordinate lies
// outside the grid.
func Index(x, y, width, height int) (int, error) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return 0, &BoundsError{X: x, Y: y, Width: width, Height: height}
	}
	return y*width + x, nil
}

// InBounds reports whether (x, y) is a valid coordinate for a width x height grid.
func InBounds(x, y, width, height int) bool {
	return x >= 0 && y >= 0 && x < width && y < height
}
