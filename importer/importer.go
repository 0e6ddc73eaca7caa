// Package importer loads tile layouts from text formats and applies them to tilemaps.
package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"tilegrid/core"
	"tilegrid/tilemap"
)

// Common errors
var (
	ErrUnknownFormat = errors.New("unknown layout format")
	ErrInvalidTile   = errors.New("invalid tile")
	ErrInvalidTriple = errors.New("invalid tile triple")
)

// Layout is a tilemap description: an optional empty fill and the tiles to
// add, in order.
type Layout struct {
	Fill  string     `json:"fill,omitempty" yaml:"fill,omitempty" toml:"fill,omitempty"`
	Tiles []TileSpec `json:"tiles" yaml:"tiles" toml:"tiles"`
}

// TileSpec describes a single tile. Value must be exactly one character.
type TileSpec struct {
	X     uint   `json:"x" yaml:"x" toml:"x"`
	Y     uint   `json:"y" yaml:"y" toml:"y"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// Position returns the tile's coordinate.
func (s TileSpec) Position() core.Coordinate {
	return core.NewCoordinate(s.X, s.Y)
}

// Rune returns the tile's display character.
func (s TileSpec) Rune() (rune, error) {
	return singleRune(s.Value)
}

// FillRune returns the layout's empty fill. ok is false when the layout does
// not set one.
func (l *Layout) FillRune() (fill rune, ok bool, err error) {
	if l.Fill == "" {
		return 0, false, nil
	}
	fill, err = singleRune(l.Fill)
	if err != nil {
		return 0, false, fmt.Errorf("fill: %w", err)
	}
	return fill, true, nil
}

// Validate checks that every tile has a single-character value.
func (l *Layout) Validate() error {
	if _, _, err := l.FillRune(); err != nil {
		return err
	}
	for i, spec := range l.Tiles {
		if _, err := spec.Rune(); err != nil {
			return fmt.Errorf("tile %d at %v: %w", i, spec.Position(), err)
		}
	}
	return nil
}

// Apply adds every tile of the layout to m in order.
// A rejected tile does not stop the rest from being added: the success
// messages and the failures are both returned in layout order.
func (l *Layout) Apply(m *tilemap.Tilemap) (added []string, failed []error) {
	for _, spec := range l.Tiles {
		value, err := spec.Rune()
		if err != nil {
			failed = append(failed, fmt.Errorf("tile at %v: %w", spec.Position(), err))
			continue
		}
		msg, err := m.AddTile(spec.Position(), value)
		if err != nil {
			failed = append(failed, err)
			continue
		}
		added = append(added, msg)
	}
	return added, failed
}

func singleRune(s string) (rune, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidTile, s)
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidTile, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Importer interface defines methods for importing layouts from various formats
type Importer interface {
	// CanImport checks if the given content can be imported by this importer
	CanImport(content string) bool

	// Import converts the input content into a layout
	Import(content string) (*Layout, error)

	// GetFormatName returns the human-readable name of the format
	GetFormatName() string

	// GetFileExtensions returns common file extensions for this format
	GetFileExtensions() []string
}

// ImporterRegistry manages available importers
type ImporterRegistry struct {
	importers []Importer
}

// NewImporterRegistry creates a new importer registry.
// JSON is tried before YAML since every JSON document is also valid YAML.
func NewImporterRegistry() *ImporterRegistry {
	return &ImporterRegistry{
		importers: []Importer{
			NewJSONImporter(),
			NewTOMLImporter(),
			NewYAMLImporter(),
		},
	}
}

// Register adds a new importer to the registry
func (r *ImporterRegistry) Register(importer Importer) {
	r.importers = append(r.importers, importer)
}

// DetectFormat attempts to detect the format of the given content
func (r *ImporterRegistry) DetectFormat(content string) (Importer, error) {
	for _, imp := range r.importers {
		if imp.CanImport(content) {
			return imp, nil
		}
	}
	return nil, fmt.Errorf("%w: unable to detect format", ErrUnknownFormat)
}

// ForExtension returns the importer registered for a file extension such as
// ".yaml", or nil.
func (r *ImporterRegistry) ForExtension(ext string) Importer {
	ext = strings.ToLower(ext)
	for _, imp := range r.importers {
		for _, e := range imp.GetFileExtensions() {
			if e == ext {
				return imp
			}
		}
	}
	return nil
}

// Import attempts to import content using auto-detection
func (r *ImporterRegistry) Import(content string) (*Layout, error) {
	importer, err := r.DetectFormat(content)
	if err != nil {
		return nil, err
	}
	return importer.Import(content)
}

// ImportWithFormat imports content using a specific format
func (r *ImporterRegistry) ImportWithFormat(content, format string) (*Layout, error) {
	format = strings.ToLower(format)

	for _, imp := range r.importers {
		if strings.ToLower(imp.GetFormatName()) == format {
			return imp.Import(content)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// ImportFile imports content read from filename. An explicit format wins,
// then the file extension, then content detection.
func (r *ImporterRegistry) ImportFile(filename, content, format string) (*Layout, error) {
	if format != "" {
		return r.ImportWithFormat(content, format)
	}
	if imp := r.ForExtension(filepath.Ext(filename)); imp != nil {
		return imp.Import(content)
	}
	return r.Import(content)
}

// GetAvailableFormats returns a list of available import formats
func (r *ImporterRegistry) GetAvailableFormats() []string {
	formats := make([]string, len(r.importers))
	for i, imp := range r.importers {
		formats[i] = imp.GetFormatName()
	}
	return formats
}
