package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"tilegrid/export"
	"tilegrid/importer"
	"tilegrid/terminal"
	"tilegrid/tilemap"
	"tilegrid/validation"
)

// Exit codes
const (
	exitOK         = 0
	exitError      = 1
	exitValidation = 2
)

// maxRenderCells caps size.X*size.Y for anything that calls Build.
const maxRenderCells = 1 << 24

// demoLayout is the tile sequence rendered when no tiles are supplied.
var demoLayout = importer.Layout{
	Fill: "-",
	Tiles: []importer.TileSpec{
		{X: 0, Y: 0, Value: "O"},
		{X: 3, Y: 0, Value: "A"},
		{X: 5, Y: 2, Value: "X"},
		{X: 2, Y: 1, Value: "U"},
		{X: 3, Y: 5, Value: "V"},
		{X: 1, Y: 4, Value: "H"},
	},
}

// viewFunc shows a rendering in the terminal. Replaced in tests.
var viewFunc = terminal.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole CLI. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tilegrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logger := log.New(stderr, "[tilegrid] ", 0)

	var tiles importer.TripleList
	var (
		fill        = fs.String("fill", "-", "Character used for empty cells")
		inputFormat = fs.String("input-format", "", "Layout format: json, yaml, toml (auto-detect if not specified)")
		format      = fs.String("format", "ascii", "Output format: ascii, json, yaml")
		outputFile  = fs.String("o", "", "Output file (default: stdout)")
		validate    = fs.Bool("validate", false, "Check the rendering against the tilemap")
		view        = fs.Bool("view", false, "Show the rendering in a full-screen viewer")
		demo        = fs.Bool("demo", false, "Render the demo layout (default when no tiles are given)")
		verbose     = fs.Bool("v", false, "Log every added tile")
		help        = fs.Bool("help", false, "Show help")
	)
	fs.Var(&tiles, "tile", "Tile as x,y,value (repeatable)")

	fs.Usage = func() {
		name := fs.Name()
		fmt.Fprintf(stderr, "Usage: %s [options] [layout.{json,yaml,toml}]\n\n", name)
		fmt.Fprintf(stderr, "Renders sparse tile layouts as text grids.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  %s                                   # Render the demo layout\n", name)
		fmt.Fprintf(stderr, "  %s -tile 0,0,O -tile 3,0,A            # Render tiles from flags\n", name)
		fmt.Fprintf(stderr, "  %s -fill . layout.yaml                # Render a layout file\n", name)
		fmt.Fprintf(stderr, "  %s -format json -o out.json tiles.toml\n", name)
		fmt.Fprintf(stderr, "  %s -view layout.json                  # Browse the grid in the terminal\n", name)
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitError
	}
	if *help {
		fs.Usage()
		return exitOK
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "Error: expected at most one layout file\n\n")
		fs.Usage()
		return exitError
	}

	layout, err := loadLayout(fs.Arg(0), *inputFormat)
	if err != nil {
		logger.Printf("Error loading layout: %v", err)
		return exitError
	}
	layout.Tiles = append(layout.Tiles, tiles...)
	if *demo || len(layout.Tiles) == 0 {
		layout.Tiles = append(append([]importer.TileSpec{}, demoLayout.Tiles...), layout.Tiles...)
		if layout.Fill == "" {
			layout.Fill = demoLayout.Fill
		}
	}

	// An explicit -fill wins over the layout
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "fill" {
			layout.Fill = *fill
		}
	})
	if layout.Fill == "" {
		layout.Fill = *fill
	}
	emptyFill, _, err := layout.FillRune()
	if err != nil {
		logger.Printf("Error: %v", err)
		return exitError
	}

	exportFormat, err := export.ParseFormat(*format)
	if err != nil {
		logger.Printf("Error: %v", err)
		fmt.Fprintf(stderr, "Available formats: %s\n", formatList())
		return exitError
	}
	exporter, err := export.NewExporter(exportFormat)
	if err != nil {
		logger.Printf("Error creating exporter: %v", err)
		return exitError
	}

	m := tilemap.New(emptyFill)
	added, failed := layout.Apply(m)
	for _, err := range failed {
		logger.Println(err)
	}
	if *verbose {
		for _, msg := range added {
			logger.Println(msg)
		}
	}

	needsRender := exportFormat == export.FormatASCII || *view || *validate
	if size := m.Size(); needsRender && !renderable(size.X, size.Y) {
		logger.Printf("Error: tilemap size %v is too large to render (limit %d cells)", size, maxRenderCells)
		return exitError
	}

	output, err := exporter.Export(m)
	if err != nil {
		logger.Printf("Error exporting tilemap: %v", err)
		return exitError
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output+"\n"), 0644); err != nil {
			logger.Printf("Error writing to file: %v", err)
			return exitError
		}
		logger.Printf("Successfully exported to %s", *outputFile)
	} else if !*view {
		fmt.Fprintln(stdout, output)
	}

	if *view {
		title := fs.Arg(0)
		if title == "" {
			title = "tilegrid"
		}
		if err := viewFunc(title, m.Build()); err != nil {
			logger.Printf("Error: %v", err)
			return exitError
		}
	}

	if *validate {
		errs := validation.NewRenderValidator().Validate(m.Build(), m)
		for _, e := range errs {
			logger.Printf("validation: %s", e)
		}
		if len(errs) > 0 {
			return exitValidation
		}
	}

	return exitOK
}

// loadLayout reads a layout file. An empty filename yields an empty layout.
func loadLayout(filename, inputFormat string) (*importer.Layout, error) {
	if filename == "" {
		return &importer.Layout{}, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	layout, err := importer.NewImporterRegistry().ImportFile(filename, string(data), inputFormat)
	if err != nil {
		return nil, fmt.Errorf("importing layout: %w", err)
	}
	return layout, nil
}

// renderable reports whether a width×height grid fits in maxRenderCells.
func renderable(width, height uint) bool {
	if width == 0 || height == 0 {
		return true
	}
	return width <= maxRenderCells/height
}

func formatList() string {
	formats := export.GetAvailableFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
