package importer

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var yamlTilesKey = regexp.MustCompile(`(?m)^tiles\s*:`)

// YAMLImporter imports layouts written as YAML documents
type YAMLImporter struct{}

// NewYAMLImporter creates a new YAML importer
func NewYAMLImporter() *YAMLImporter {
	return &YAMLImporter{}
}

// CanImport checks for a top-level tiles key
func (y *YAMLImporter) CanImport(content string) bool {
	return yamlTilesKey.MatchString(content)
}

// Import converts YAML content to a layout
func (y *YAMLImporter) Import(content string) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(strings.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("parsing YAML layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetFormatName returns the format name
func (y *YAMLImporter) GetFormatName() string {
	return "YAML"
}

// GetFileExtensions returns common file extensions
func (y *YAMLImporter) GetFileExtensions() []string {
	return []string{".yaml", ".yml"}
}
