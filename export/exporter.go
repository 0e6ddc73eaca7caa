// Package export provides functionality to export tilemaps to various text-based formats
package export

import (
	"errors"
	"fmt"

	"tilegrid/importer"
	"tilegrid/tilemap"
)

// ErrNilTilemap is returned when exporting a nil tilemap.
var ErrNilTilemap = errors.New("tilemap is nil")

// Format represents an export format
type Format string

const (
	// FormatASCII exports the rendered grid (default tilegrid format)
	FormatASCII Format = "ascii"
	// FormatJSON exports a JSON layout document
	FormatJSON Format = "json"
	// FormatYAML exports a YAML layout document
	FormatYAML Format = "yaml"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a tilemap to the target format
	Export(m *tilemap.Tilemap) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatASCII:
		return NewASCIIExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatYAML:
		return NewYAMLExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatASCII,
		FormatJSON,
		FormatYAML,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatASCII: "Rendered text grid (tilegrid native format)",
		FormatJSON:  "JSON layout, readable with -input-format json",
		FormatYAML:  "YAML layout, readable with -input-format yaml",
	}
}

// LayoutOf describes a tilemap as a layout that recreates it when applied to a
// new tilemap. The size high-water mark is not part of a layout.
func LayoutOf(m *tilemap.Tilemap) *importer.Layout {
	l := &importer.Layout{
		Fill:  string(m.EmptyFill()),
		Tiles: make([]importer.TileSpec, 0, m.Len()),
	}
	for tile := range m.All() {
		l.Tiles = append(l.Tiles, importer.TileSpec{
			X:     tile.Position.X,
			Y:     tile.Position.Y,
			Value: string(tile.Value),
		})
	}
	return l
}
