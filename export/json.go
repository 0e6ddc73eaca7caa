package export

import (
	"encoding/json"

	"tilegrid/tilemap"
)

// JSONExporter exports tilemaps as JSON layouts
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a tilemap to JSON
func (e *JSONExporter) Export(m *tilemap.Tilemap) (string, error) {
	if m == nil {
		return "", ErrNilTilemap
	}
	data, err := json.MarshalIndent(LayoutOf(m), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
