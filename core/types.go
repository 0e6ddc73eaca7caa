// Package core contains the fundamental types used throughout the tilegrid renderer.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Arithmetic errors. Coordinate arithmetic panics with one of these wrapped
// in a descriptive message; it never wraps around or clamps.
var (
	ErrCoordinateOverflow  = errors.New("coordinate overflow")
	ErrCoordinateUnderflow = errors.New("coordinate underflow")
)

// Coordinate is a non-negative 2D position on a tilemap.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X is the column and increases rightward
//   - Y is the row and increases downward
//
// Coordinates are ordered row-major: Y is compared first, then X. This is the
// order in which tiles are rendered.
type Coordinate struct {
	X, Y uint
}

var (
	// ZeroCoordinate is the origin.
	ZeroCoordinate = Coordinate{}
	// MaxCoordinate is the largest representable coordinate.
	MaxCoordinate = Coordinate{X: math.MaxUint, Y: math.MaxUint}
)

// NewCoordinate creates a coordinate from a column and a row.
func NewCoordinate(x, y uint) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the component-wise sum of c and o.
// It panics if either component overflows.
func (c Coordinate) Add(o Coordinate) Coordinate {
	x, y := c.X+o.X, c.Y+o.Y
	if x < c.X || y < c.Y {
		panic(fmt.Errorf("%w: %v + %v", ErrCoordinateOverflow, c, o))
	}
	return Coordinate{X: x, Y: y}
}

// Sub returns the component-wise difference of c and o.
// It panics if either component of o is larger than the one in c.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	if o.X > c.X || o.Y > c.Y {
		panic(fmt.Errorf("%w: %v - %v", ErrCoordinateUnderflow, c, o))
	}
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Equal reports whether both coordinates name the same cell.
func (c Coordinate) Equal(o Coordinate) bool {
	return c == o
}

// Compare returns -1, 0 or +1 depending on whether c sorts before, equal to
// or after o in row-major order.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts before o in row-major order.
func (c Coordinate) Less(o Coordinate) bool {
	return c.Compare(o) < 0
}

// String returns the coordinate formatted as "{ x: 1, y: 2 }".
func (c Coordinate) String() string {
	return fmt.Sprintf("{ x: %d, y: %d }", c.X, c.Y)
}

// Tile is a labeled point on a tilemap.
//
// Equality and ordering only look at Position, so a set of tiles holds at
// most one tile per cell regardless of value.
type Tile struct {
	Position Coordinate
	Value    rune
}

// NewTile creates a tile at the given position.
func NewTile(position Coordinate, value rune) Tile {
	return Tile{Position: position, Value: value}
}

// Equal reports whether both tiles occupy the same position.
func (t Tile) Equal(o Tile) bool {
	return t.Position.Equal(o.Position)
}

// Compare orders tiles by position.
func (t Tile) Compare(o Tile) int {
	return t.Position.Compare(o.Position)
}

// Less reports whether t sorts before o.
func (t Tile) Less(o Tile) bool {
	return t.Position.Less(o.Position)
}

// String returns the tile formatted as "'v' at { x: 1, y: 2 }".
func (t Tile) String() string {
	return fmt.Sprintf("'%c' at %v", t.Value, t.Position)
}
