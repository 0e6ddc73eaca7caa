// Package validation checks rendered tilemaps against the tilemap they came from.
package validation

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"tilegrid/core"
	"tilegrid/tilemap"
)

// RenderValidator validates that a rendering has the tilemap's shape and that
// every cell holds the right character.
type RenderValidator struct {
	// Track validation errors
	errors []ValidationError
	// Options
	checkWidth bool // Flag characters that do not occupy exactly one terminal cell
}

// ValidationError represents a validation error with location information.
type ValidationError struct {
	X, Y    uint
	Char    rune
	Context string
	Message string
}

// NewRenderValidator creates a new validator with default settings.
func NewRenderValidator() *RenderValidator {
	return &RenderValidator{
		checkWidth: true,
	}
}

// SetCheckWidth enables or disables the terminal display width check.
func (v *RenderValidator) SetCheckWidth(check bool) {
	v.checkWidth = check
}

// Validate checks output, as produced by m.Build, against m.
func (v *RenderValidator) Validate(output string, m *tilemap.Tilemap) []ValidationError {
	v.errors = nil
	size := m.Size()
	fill := m.EmptyFill()

	var rows []string
	if output != "" {
		rows = strings.Split(output, "\n")
	}
	if uint(len(rows)) != size.Y {
		v.addError(0, uint(len(rows)), 0, "shape",
			"rendering has %d rows, tilemap size is %v", len(rows), size)
	}

	for y, row := range rows {
		cells := []rune(row)
		if uint(len(cells)) != size.X {
			v.addError(uint(len(cells)), uint(y), 0, "shape",
				"row has %d cells, want %d", len(cells), size.X)
		}
		for x, char := range cells {
			if uint(x) >= size.X || uint(y) >= size.Y {
				break
			}
			want := fill
			if tile, ok := m.Tile(core.NewCoordinate(uint(x), uint(y))); ok {
				want = tile.Value
			}
			if char != want {
				v.addError(uint(x), uint(y), char, fmt.Sprintf("want=%c", want),
					"cell holds %q, want %q", char, want)
			}
		}
	}

	if v.checkWidth {
		if w := runewidth.RuneWidth(fill); w != 1 {
			v.addError(0, 0, fill, "fill", "empty fill occupies %d terminal cells", w)
		}
		for tile := range m.All() {
			if w := runewidth.RuneWidth(tile.Value); w != 1 {
				v.addError(tile.Position.X, tile.Position.Y, tile.Value, "width",
					"tile value occupies %d terminal cells", w)
			}
		}
	}

	return v.errors
}

// addError adds a validation error.
func (v *RenderValidator) addError(x, y uint, char rune, context, format string, args ...interface{}) {
	v.errors = append(v.errors, ValidationError{
		X:       x,
		Y:       y,
		Char:    char,
		Context: context,
		Message: fmt.Sprintf(format, args...),
	})
}

// String formats validation errors as a string.
func (e ValidationError) String() string {
	return fmt.Sprintf("(%d,%d) '%c' [%s]: %s", e.X, e.Y, e.Char, e.Context, e.Message)
}
