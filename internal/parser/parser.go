// Package parser reads the calcudoku text format: a section of region
// definitions, one `NAME=TARGET OP` per line, terminated by a literal START
// line, followed by size*size whitespace-separated region-name tokens
// assigning each cell (row-major) to a named region. Row and column
// uniqueness regions are synthesized and never appear in the file.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/calcudoku/internal/region"
)

// DefaultSize is the grid side of the standard puzzle format.
const DefaultSize = 8

var ops = map[string]region.Kind{
	"+": region.Sum,
	"-": region.Difference,
	"*": region.Product,
	"/": region.Quotient,
}

type cage struct {
	kind      region.Kind
	target    int
	positions []int
}

// Parse reads a puzzle definition and returns the validated region index.
// All malformed input is rejected here, wrapped in region.ErrInvalidPuzzle;
// the solver never sees a bad index.
func Parse(r io.Reader, size int) (*region.Index, error) {
	sc := bufio.NewScanner(r)
	var names []string // keep definition order for stable region lists
	cages := map[string]*cage{}
	lineNo := 0
	started := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "START" {
			started = true
			break
		}
		if line == "" {
			continue
		}
		name, desc, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected NAME=TARGET OP: %w", lineNo, region.ErrInvalidPuzzle)
		}
		fields := strings.Fields(desc)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected NAME=TARGET OP: %w", lineNo, region.ErrInvalidPuzzle)
		}
		target, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad target %q: %w", lineNo, fields[0], region.ErrInvalidPuzzle)
		}
		kind, ok := ops[fields[1]]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operator %q: %w", lineNo, fields[1], region.ErrInvalidPuzzle)
		}
		if _, dup := cages[name]; dup {
			return nil, fmt.Errorf("line %d: region %q defined twice: %w", lineNo, name, region.ErrInvalidPuzzle)
		}
		cages[name] = &cage{kind: kind, target: target}
		names = append(names, name)
	}
	if !started {
		return nil, fmt.Errorf("missing START line: %w", region.ErrInvalidPuzzle)
	}

	cells := size * size
	pos := 0
	for sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			if pos >= cells {
				return nil, fmt.Errorf("more than %d cell tokens: %w", cells, region.ErrInvalidPuzzle)
			}
			c, ok := cages[tok]
			if !ok {
				return nil, fmt.Errorf("cell %d assigned to undefined region %q: %w", pos, tok, region.ErrInvalidPuzzle)
			}
			c.positions = append(c.positions, pos)
			pos++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pos != cells {
		return nil, fmt.Errorf("got %d cell tokens, want %d: %w", pos, cells, region.ErrInvalidPuzzle)
	}

	regs := make([]region.Region, 0, len(names)+2*size)
	for _, n := range names {
		c := cages[n]
		if len(c.positions) == 0 {
			return nil, fmt.Errorf("region %q assigned no cells: %w", n, region.ErrInvalidPuzzle)
		}
		regs = append(regs, region.Region{Kind: c.kind, Target: c.target, Positions: c.positions})
	}
	regs = append(regs, region.Lines(size)...)
	return region.NewIndex(size, regs)
}

// ParseString is Parse over an in-memory source.
func ParseString(src string, size int) (*region.Index, error) {
	return Parse(strings.NewReader(src), size)
}
