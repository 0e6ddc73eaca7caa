package importer

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTriple parses a tile written as "x,y,value", for example "3,0,A".
// The value is taken verbatim after the second comma, so "1,1,," places a
// comma.
func ParseTriple(s string) (TileSpec, error) {
	parts := strings.SplitN(s, ",", 3)
	if len(parts) != 3 {
		return TileSpec{}, fmt.Errorf("%w: %q, want x,y,value", ErrInvalidTriple, s)
	}

	x, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 0)
	if err != nil {
		return TileSpec{}, fmt.Errorf("%w: x in %q: %v", ErrInvalidTriple, s, err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 0)
	if err != nil {
		return TileSpec{}, fmt.Errorf("%w: y in %q: %v", ErrInvalidTriple, s, err)
	}

	spec := TileSpec{X: uint(x), Y: uint(y), Value: parts[2]}
	if _, err := spec.Rune(); err != nil {
		return TileSpec{}, fmt.Errorf("%w: %q: %v", ErrInvalidTriple, s, err)
	}
	return spec, nil
}

// TripleList collects repeated -tile flags. It implements flag.Value.
type TripleList []TileSpec

// String returns the triples joined by spaces.
func (l *TripleList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, spec := range *l {
		parts[i] = fmt.Sprintf("%d,%d,%s", spec.X, spec.Y, spec.Value)
	}
	return strings.Join(parts, " ")
}

// Set parses and appends one triple.
func (l *TripleList) Set(s string) error {
	spec, err := ParseTriple(s)
	if err != nil {
		return err
	}
	*l = append(*l, spec)
	return nil
}
