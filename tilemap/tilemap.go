// Package tilemap implements a sparse grid of single-character tiles and its
// text rendering.
package tilemap

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"tilegrid/core"
)

// Tile errors. Both are recoverable: the tilemap is left unchanged.
var (
	ErrDuplicatePosition = errors.New("position already occupied")
	ErrPositionNotFound  = errors.New("no tile")
)

// Tilemap is a sparse 2D grid of tiles that renders to text.
//
// Tiles are kept in a slice sorted in row-major order, so rendering is a
// single pass over the tiles. The size is a high-water mark: it grows to fit
// every added tile and is never shrunk by RemoveTile.
//
// Thread Safety:
// Tilemap has no internal synchronization. Callers sharing a tilemap between
// goroutines must guard every method with one lock.
//
// Performance Characteristics:
//   - AddTile/RemoveTile/Tile: O(log n) search, O(n) shift
//   - Build: O(size.X × size.Y)
type Tilemap struct {
	emptyFill rune
	size      core.Coordinate
	tiles     []core.Tile
}

// New creates an empty tilemap that renders unoccupied cells as emptyFill.
func New(emptyFill rune) *Tilemap {
	return &Tilemap{
		emptyFill: emptyFill,
		size:      core.ZeroCoordinate,
	}
}

// Size returns the bounding extent of the tilemap. Each component is one more
// than the largest column or row ever occupied, or zero when no tile was ever
// added.
func (m *Tilemap) Size() core.Coordinate {
	return m.size
}

// EmptyFill returns the character used for unoccupied cells.
func (m *Tilemap) EmptyFill() rune {
	return m.emptyFill
}

// Len returns the number of tiles.
func (m *Tilemap) Len() int {
	return len(m.tiles)
}

// search returns the index of the tile at position, or where it would be
// inserted, and whether it is present.
func (m *Tilemap) search(position core.Coordinate) (int, bool) {
	return slices.BinarySearchFunc(m.tiles, position, func(t core.Tile, p core.Coordinate) int {
		return t.Position.Compare(p)
	})
}

// AddTile places a new tile at position.
// On success it returns a log message that includes the new size. If the
// position is already occupied the tilemap is unchanged and the returned error
// wraps ErrDuplicatePosition.
//
// AddTile panics with core.ErrCoordinateOverflow when position has a component
// equal to the largest uint, since the size could not represent it.
func (m *Tilemap) AddTile(position core.Coordinate, value rune) (string, error) {
	tile := core.NewTile(position, value)
	i, found := m.search(position)
	if found {
		return "", fmt.Errorf("failed to add a tile at %v with value '%c': %w", position, value, ErrDuplicatePosition)
	}

	// Computed before inserting so an overflow leaves the tilemap untouched.
	extent := position.Add(core.Coordinate{X: 1, Y: 1})

	m.tiles = slices.Insert(m.tiles, i, tile)
	m.size.X = max(m.size.X, extent.X)
	m.size.Y = max(m.size.Y, extent.Y)

	return fmt.Sprintf("new tile was added at %v with value '%c', tilemap size is %v", position, value, m.size), nil
}

// RemoveTile deletes the tile at position. The size is not recomputed.
// It returns an error wrapping ErrPositionNotFound if there is no such tile.
func (m *Tilemap) RemoveTile(position core.Coordinate) error {
	i, found := m.search(position)
	if !found {
		return fmt.Errorf("%w at position %v", ErrPositionNotFound, position)
	}
	m.tiles = slices.Delete(m.tiles, i, i+1)
	return nil
}

// Tile returns the tile at position, if any.
func (m *Tilemap) Tile(position core.Coordinate) (core.Tile, bool) {
	i, found := m.search(position)
	if !found {
		return core.Tile{}, false
	}
	return m.tiles[i], true
}

// Tiles returns a copy of all tiles in row-major order.
func (m *Tilemap) Tiles() []core.Tile {
	return slices.Clone(m.tiles)
}

// All iterates over the tiles in row-major order.
// The tilemap must not be modified during iteration.
func (m *Tilemap) All() iter.Seq[core.Tile] {
	return func(yield func(core.Tile) bool) {
		for _, t := range m.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

// rowFill is the outcome of fillRow. Either the row reached size.X and a new
// line should start, or filling paused mid-row and continues from resume.
type rowFill struct {
	complete bool
	resume   uint
}

// Build renders the tilemap as size.Y newline-separated rows of size.X
// characters. There is no trailing newline. An empty tilemap renders as "".
//
// Rows below the last tile that are still inside the size (left behind by
// RemoveTile) are rendered as rows of empty fill.
func (m *Tilemap) Build() string {
	var sb strings.Builder
	if m.size.X == 0 || m.size.Y == 0 {
		return ""
	}
	if cells := m.size.X * m.size.Y; cells/m.size.Y == m.size.X && cells < 1<<20 {
		sb.Grow(int(cells + m.size.Y))
	}

	var x, y uint
	for _, tile := range m.tiles {
		// Finish rows until we reach the tile's row
		for y < tile.Position.Y {
			fill := m.fillRow(&sb, x, m.size.X)
			if fill.complete {
				sb.WriteByte('\n')
				x = 0
				y++
			} else {
				x = fill.resume
			}
		}

		// Fill the current row up to the tile
		fill := m.fillRow(&sb, x, tile.Position.X)
		if fill.complete {
			panic("tilemap: row completed before reaching its tile")
		}
		x = fill.resume

		sb.WriteRune(tile.Value)
		x++
	}

	// Pad the last row, then any remaining rows below it
	for {
		m.fillRow(&sb, x, m.size.X)
		if y+1 >= m.size.Y {
			break
		}
		sb.WriteByte('\n')
		x = 0
		y++
	}

	return sb.String()
}

// fillRow writes empty fill for columns [start, end) of the current row.
func (m *Tilemap) fillRow(sb *strings.Builder, start, end uint) rowFill {
	for ; start < end; start++ {
		sb.WriteRune(m.emptyFill)
	}
	if start == m.size.X {
		return rowFill{complete: true}
	}
	return rowFill{resume: start}
}

// String returns the rendered tilemap.
func (m *Tilemap) String() string {
	return m.Build()
}
