package export

import "tilegrid/tilemap"

// ASCIIExporter exports the rendered text grid
type ASCIIExporter struct{}

// NewASCIIExporter creates a new ASCII exporter
func NewASCIIExporter() *ASCIIExporter {
	return &ASCIIExporter{}
}

// Export renders the tilemap
func (e *ASCIIExporter) Export(m *tilemap.Tilemap) (string, error) {
	if m == nil {
		return "", ErrNilTilemap
	}
	return m.Build(), nil
}

// GetFileExtension returns the recommended file extension
func (e *ASCIIExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *ASCIIExporter) GetFormatName() string {
	return "ASCII"
}
