// Command import normalizes a tile layout in any supported format into a
// JSON layout, dropping duplicate tiles and sorting the rest row-major.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"tilegrid/export"
	"tilegrid/importer"
	"tilegrid/tilemap"
)

func main() {
	var (
		inputFile = flag.String("i", "", "Input file path")
		format    = flag.String("f", "", "Format (json, yaml, toml) - auto-detect if not specified")
		output    = flag.String("o", "", "Output file path (default: stdout)")
	)

	flag.Parse()
	logger := log.New(os.Stderr, "[import] ", 0)

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	content, err := os.ReadFile(*inputFile)
	if err != nil {
		logger.Fatalf("Error reading input file: %v", err)
	}

	layout, err := importer.NewImporterRegistry().ImportFile(*inputFile, string(content), *format)
	if err != nil {
		logger.Fatalf("Error importing layout: %v", err)
	}

	fill, ok, err := layout.FillRune()
	if err != nil {
		logger.Fatalf("Error importing layout: %v", err)
	}
	if !ok {
		fill = '-'
	}

	m := tilemap.New(fill)
	_, failed := layout.Apply(m)
	for _, err := range failed {
		logger.Printf("skipped: %v", err)
	}

	jsonData, err := export.NewJSONExporter().Export(m)
	if err != nil {
		logger.Fatalf("Error converting to JSON: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(jsonData+"\n"), 0644); err != nil {
			logger.Fatalf("Error writing output file: %v", err)
		}
		fmt.Printf("Successfully imported layout to %s\n", *output)
	} else {
		fmt.Println(jsonData)
	}
}
