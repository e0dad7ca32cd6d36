// Package terminal detects the dimensions of the controlling terminal so
// map panes can size themselves to fit.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// ClampWidth limits a desired pane width to what the terminal can show.
func ClampWidth(want int) int {
	width, _ := GetSize()
	if want > width {
		return width
	}
	return want
}
