package region

import (
	"errors"
	"fmt"
)

// ErrInvalidPuzzle is the configuration-error class: every malformed puzzle
// definition (bad positions, coverage violations, parse failures) wraps it.
var ErrInvalidPuzzle = errors.New("invalid puzzle")

// Index maps every board position to the regions containing it, so the solver
// can look up the constraints touched by a newly filled cell in O(1). For a
// puzzle from the standard file format each cell belongs to exactly three
// regions: its cage, its row and its column. It is built once and never
// mutated afterwards.
type Index struct {
	Size    int        // grid side length
	Digits  int        // digit domain is 1..Digits, normally == Size
	Regions []Region   // all regions, cages first
	ByCell  [][]Region // position -> regions containing it
}

// Lines synthesizes the size row-uniqueness and size column-uniqueness
// regions; they never appear in the puzzle text.
func Lines(size int) []Region {
	out := make([]Region, 0, 2*size)
	for i := 0; i < size; i++ {
		row := make([]int, size)
		col := make([]int, size)
		for j := 0; j < size; j++ {
			row[j] = i*size + j
			col[j] = j*size + i
		}
		out = append(out, Region{Kind: RowUnique, Positions: row})
		out = append(out, Region{Kind: ColUnique, Positions: col})
	}
	return out
}

// NewIndex builds and validates the index for a size×size board with the
// natural digit domain 1..size.
func NewIndex(size int, regions []Region) (*Index, error) {
	return NewIndexDigits(size, size, regions)
}

// NewIndexDigits is NewIndex with an explicit digit domain, used by reduced
// test boards whose digit range exceeds the grid side.
//
// Validation is deliberately strict: the solver has undefined behavior on
// malformed input, so everything is rejected here, once, before any search
// runs. Cells must be covered by at least one region, by at most one cage and
// at most one row and one column region, and all positions must be in range.
func NewIndexDigits(size, digits int, regions []Region) (*Index, error) {
	if size < 1 {
		return nil, fmt.Errorf("board size %d: %w", size, ErrInvalidPuzzle)
	}
	if digits < size {
		return nil, fmt.Errorf("digit domain 1..%d too small for size %d: %w", digits, size, ErrInvalidPuzzle)
	}
	cells := size * size
	idx := &Index{
		Size:    size,
		Digits:  digits,
		Regions: regions,
		ByCell:  make([][]Region, cells),
	}
	cages := make([]int, cells)
	rows := make([]int, cells)
	cols := make([]int, cells)
	for _, r := range regions {
		if len(r.Positions) == 0 {
			return nil, fmt.Errorf("%s region has no cells: %w", r.Kind, ErrInvalidPuzzle)
		}
		seen := make(map[int]bool, len(r.Positions))
		for _, p := range r.Positions {
			if p < 0 || p >= cells {
				return nil, fmt.Errorf("%s region position %d out of range [0,%d): %w", r.Kind, p, cells, ErrInvalidPuzzle)
			}
			if seen[p] {
				return nil, fmt.Errorf("%s region repeats position %d: %w", r.Kind, p, ErrInvalidPuzzle)
			}
			seen[p] = true
			switch {
			case r.Kind.Cage():
				cages[p]++
			case r.Kind == RowUnique:
				rows[p]++
			default:
				cols[p]++
			}
			idx.ByCell[p] = append(idx.ByCell[p], r)
		}
	}
	for p := 0; p < cells; p++ {
		if cages[p] > 1 || rows[p] > 1 || cols[p] > 1 {
			return nil, fmt.Errorf("cell %d covered more than once: %w", p, ErrInvalidPuzzle)
		}
		if len(idx.ByCell[p]) == 0 {
			return nil, fmt.Errorf("cell %d not covered by any region: %w", p, ErrInvalidPuzzle)
		}
	}
	return idx, nil
}
