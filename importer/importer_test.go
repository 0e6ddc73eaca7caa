package importer_test

import (
	"errors"
	"strings"
	"testing"

	"tilegrid/core"
	"tilegrid/importer"
	"tilegrid/tilemap"
)

const jsonLayout = `{
  "fill": ".",
  "tiles": [
    {"x": 0, "y": 0, "value": "O"},
    {"x": 3, "y": 0, "value": "A"},
    {"x": 2, "y": 1, "value": "U"}
  ]
}`

const yamlLayout = `fill: "."
tiles:
  - {x: 0, y: 0, value: "O"}
  - x: 3
    y: 0
    value: "A"
  - {x: 2, y: 1, value: "U"}
`

const tomlLayout = `fill = "."

[[tiles]]
x = 0
y = 0
value = "O"

[[tiles]]
x = 3
y = 0
value = "A"

[[tiles]]
x = 2
y = 1
value = "U"
`

func TestDetectFormat(t *testing.T) {
	registry := importer.NewImporterRegistry()

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"JSON", jsonLayout, "JSON", false},
		{"YAML", yamlLayout, "YAML", false},
		{"TOML", tomlLayout, "TOML", false},
		{"Plain text", "O--A--\n--U---", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp, err := registry.DetectFormat(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, importer.ErrUnknownFormat) {
					t.Errorf("DetectFormat() error = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if imp.GetFormatName() != tt.want {
				t.Errorf("DetectFormat() = %s, want %s", imp.GetFormatName(), tt.want)
			}
		})
	}
}

func TestImportFormats(t *testing.T) {
	registry := importer.NewImporterRegistry()
	want := []importer.TileSpec{
		{X: 0, Y: 0, Value: "O"},
		{X: 3, Y: 0, Value: "A"},
		{X: 2, Y: 1, Value: "U"},
	}

	for name, content := range map[string]string{
		"json": jsonLayout,
		"yaml": yamlLayout,
		"toml": tomlLayout,
	} {
		t.Run(name, func(t *testing.T) {
			layout, err := registry.ImportWithFormat(content, name)
			if err != nil {
				t.Fatalf("ImportWithFormat(%s) error = %v", name, err)
			}
			if layout.Fill != "." {
				t.Errorf("Fill = %q, want %q", layout.Fill, ".")
			}
			if len(layout.Tiles) != len(want) {
				t.Fatalf("got %d tiles, want %d", len(layout.Tiles), len(want))
			}
			for i := range want {
				if layout.Tiles[i] != want[i] {
					t.Errorf("tile %d = %+v, want %+v", i, layout.Tiles[i], want[i])
				}
			}
		})
	}
}

func TestImportErrors(t *testing.T) {
	registry := importer.NewImporterRegistry()

	tests := []struct {
		name    string
		format  string
		content string
		target  error
	}{
		{"JSON multi-char value", "json", `{"tiles":[{"x":0,"y":0,"value":"AB"}]}`, importer.ErrInvalidTile},
		{"JSON empty value", "json", `{"tiles":[{"x":0,"y":0,"value":""}]}`, importer.ErrInvalidTile},
		{"JSON negative x", "json", `{"tiles":[{"x":-1,"y":0,"value":"A"}]}`, nil},
		{"JSON unknown field", "json", `{"tiles":[{"x":0,"y":0,"value":"A","z":1}]}`, nil},
		{"YAML bad fill", "yaml", "fill: \"--\"\ntiles: []\n", importer.ErrInvalidTile},
		{"YAML unknown field", "yaml", "tiles:\n  - {x: 0, y: 0, value: \"A\", colour: red}\n", nil},
		{"TOML negative y", "toml", "[[tiles]]\nx = 0\ny = -2\nvalue = \"A\"\n", importer.ErrInvalidTile},
		{"TOML negative x", "toml", "[[tiles]]\nx = -1\ny = 0\nvalue = \"A\"\n", importer.ErrInvalidTile},
		{"TOML unknown key", "toml", "[[tiles]]\nx = 0\ny = 0\nvalue = \"A\"\nz = 3\n", nil},
		{"Unknown format", "xml", "<tiles/>", importer.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.ImportWithFormat(tt.content, tt.format)
			if err == nil {
				t.Fatal("ImportWithFormat() error = nil, want error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("ImportWithFormat() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestImportFile(t *testing.T) {
	registry := importer.NewImporterRegistry()

	// Extension wins over detection
	layout, err := registry.ImportFile("tiles.yml", `{"tiles":[{"x":1,"y":1,"value":"Y"}]}`, "")
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if len(layout.Tiles) != 1 || layout.Tiles[0].Value != "Y" {
		t.Errorf("ImportFile() tiles = %+v", layout.Tiles)
	}

	// Unknown extension falls back to detection
	if _, err := registry.ImportFile("tiles.txt", tomlLayout, ""); err != nil {
		t.Errorf("ImportFile() with detection error = %v", err)
	}

	// Explicit format wins over extension
	if _, err := registry.ImportFile("tiles.json", yamlLayout, "yaml"); err != nil {
		t.Errorf("ImportFile() with explicit format error = %v", err)
	}

	if imp := registry.ForExtension(".TOML"); imp == nil || imp.GetFormatName() != "TOML" {
		t.Errorf("ForExtension(.TOML) = %v", imp)
	}
	if imp := registry.ForExtension(".png"); imp != nil {
		t.Errorf("ForExtension(.png) = %v, want nil", imp.GetFormatName())
	}
}

func TestGetAvailableFormats(t *testing.T) {
	got := strings.Join(importer.NewImporterRegistry().GetAvailableFormats(), ",")
	if got != "JSON,TOML,YAML" {
		t.Errorf("GetAvailableFormats() = %s", got)
	}
}

func TestLayoutApply(t *testing.T) {
	layout := &importer.Layout{
		Tiles: []importer.TileSpec{
			{X: 0, Y: 0, Value: "O"},
			{X: 3, Y: 0, Value: "A"},
			{X: 0, Y: 0, Value: "Z"}, // duplicate
			{X: 5, Y: 1, Value: "too long"},
			{X: 2, Y: 1, Value: "U"},
		},
	}

	m := tilemap.New('-')
	added, failed := layout.Apply(m)

	if len(added) != 3 {
		t.Errorf("added %d tiles, want 3: %v", len(added), added)
	}
	if len(failed) != 2 {
		t.Fatalf("got %d failures, want 2: %v", len(failed), failed)
	}
	if !errors.Is(failed[0], tilemap.ErrDuplicatePosition) {
		t.Errorf("failure 0 = %v, want ErrDuplicatePosition", failed[0])
	}
	if !errors.Is(failed[1], importer.ErrInvalidTile) {
		t.Errorf("failure 1 = %v, want ErrInvalidTile", failed[1])
	}

	if got, want := m.Build(), "O--A\n--U-"; got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
	if tile, _ := m.Tile(core.ZeroCoordinate); tile.Value != 'O' {
		t.Errorf("duplicate replaced the first tile: %v", tile)
	}
}

func TestLayoutFillRune(t *testing.T) {
	tests := []struct {
		fill    string
		want    rune
		ok      bool
		wantErr bool
	}{
		{"", 0, false, false},
		{"-", '-', true, false},
		{"·", '·', true, false},
		{"ab", 0, false, true},
	}

	for _, tt := range tests {
		l := importer.Layout{Fill: tt.fill}
		got, ok, err := l.FillRune()
		if (err != nil) != tt.wantErr {
			t.Errorf("FillRune(%q) error = %v, wantErr %v", tt.fill, err, tt.wantErr)
			continue
		}
		if got != tt.want || ok != tt.ok {
			t.Errorf("FillRune(%q) = %q, %v, want %q, %v", tt.fill, got, ok, tt.want, tt.ok)
		}
	}
}
