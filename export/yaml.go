package export

import (
	"strings"

	"gopkg.in/yaml.v3"

	"tilegrid/tilemap"
)

// YAMLExporter exports tilemaps as YAML layouts
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAML exporter
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Export converts a tilemap to YAML
func (e *YAMLExporter) Export(m *tilemap.Tilemap) (string, error) {
	if m == nil {
		return "", ErrNilTilemap
	}
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(LayoutOf(m)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// GetFileExtension returns the file extension for YAML
func (e *YAMLExporter) GetFileExtension() string {
	return ".yaml"
}

// GetFormatName returns the format name
func (e *YAMLExporter) GetFormatName() string {
	return "YAML"
}
