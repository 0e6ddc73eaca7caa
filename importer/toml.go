package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

var tomlTilesTable = regexp.MustCompile(`(?m)^\s*\[\[\s*tiles\s*\]\]`)

// tomlLayout mirrors Layout with signed coordinates. The decoder converts
// negative integers into uint fields without a range check.
type tomlLayout struct {
	Fill  string     `toml:"fill"`
	Tiles []tomlTile `toml:"tiles"`
}

type tomlTile struct {
	X     int64  `toml:"x"`
	Y     int64  `toml:"y"`
	Value string `toml:"value"`
}

// TOMLImporter imports layouts written as TOML documents, one [[tiles]]
// table per tile
type TOMLImporter struct{}

// NewTOMLImporter creates a new TOML importer
func NewTOMLImporter() *TOMLImporter {
	return &TOMLImporter{}
}

// CanImport checks for a [[tiles]] array table
func (t *TOMLImporter) CanImport(content string) bool {
	return tomlTilesTable.MatchString(content)
}

// Import converts TOML content to a layout
func (t *TOMLImporter) Import(content string) (*Layout, error) {
	var raw tomlLayout
	md, err := toml.Decode(content, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML layout: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parsing TOML layout: unknown keys %s", strings.Join(keys, ", "))
	}

	l := Layout{Fill: raw.Fill, Tiles: make([]TileSpec, 0, len(raw.Tiles))}
	for i, tile := range raw.Tiles {
		if tile.X < 0 || tile.Y < 0 {
			return nil, fmt.Errorf("tile %d: %w: negative coordinate (%d, %d)", i, ErrInvalidTile, tile.X, tile.Y)
		}
		l.Tiles = append(l.Tiles, TileSpec{X: uint(tile.X), Y: uint(tile.Y), Value: tile.Value})
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetFormatName returns the format name
func (t *TOMLImporter) GetFormatName() string {
	return "TOML"
}

// GetFileExtensions returns common file extensions
func (t *TOMLImporter) GetFileExtensions() []string {
	return []string{".toml"}
}
