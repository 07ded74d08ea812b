package region

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"svw.info/calcudoku/internal/domain"
)

func board(cells ...uint8) *domain.Board {
	return &domain.Board{Size: 3, Cells: cells}
}

func TestFullValidity(t *testing.T) {
	tests := []struct {
		name  string
		r     Region
		cells []uint8
		want  bool
	}{
		{"sum met", Region{Kind: Sum, Target: 5, Positions: []int{0, 1}}, []uint8{2, 3}, true},
		{"sum missed", Region{Kind: Sum, Target: 5, Positions: []int{0, 1}}, []uint8{2, 2}, false},
		{"product met", Region{Kind: Product, Target: 12, Positions: []int{0, 1, 2}}, []uint8{2, 3, 2}, true},
		{"product missed", Region{Kind: Product, Target: 12, Positions: []int{0, 1, 2}}, []uint8{2, 3, 3}, false},
		{"difference met", Region{Kind: Difference, Target: 3, Positions: []int{0, 1}}, []uint8{5, 2}, true},
		{"difference multi-cell", Region{Kind: Difference, Target: 1, Positions: []int{0, 1, 2}}, []uint8{6, 2, 3}, true},
		{"difference missed", Region{Kind: Difference, Target: 2, Positions: []int{0, 1}}, []uint8{5, 2}, false},
		{"quotient met", Region{Kind: Quotient, Target: 2, Positions: []int{0, 1, 2}}, []uint8{8, 4, 4}, true},
		{"quotient equal pair", Region{Kind: Quotient, Target: 1, Positions: []int{0, 1}}, []uint8{3, 3}, true},
		{"quotient missed", Region{Kind: Quotient, Target: 2, Positions: []int{0, 1}}, []uint8{8, 2}, false},
		{"row unique met", Region{Kind: RowUnique, Positions: []int{0, 1, 2}}, []uint8{1, 3, 2}, true},
		{"row unique duplicate", Region{Kind: RowUnique, Positions: []int{0, 1, 2}}, []uint8{1, 3, 3}, false},
		{"column unique duplicate", Region{Kind: ColUnique, Positions: []int{0, 1}}, []uint8{2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(tt.r.IsValid(board(tt.cells...)), tt.want)
		})
	}
}

func TestPartialValidity(t *testing.T) {
	tests := []struct {
		name  string
		r     Region
		cells []uint8
		want  bool
	}{
		{"sum below target", Region{Kind: Sum, Target: 10, Positions: []int{0, 1, 2}}, []uint8{3, 0, 0}, true},
		{"sum already at target", Region{Kind: Sum, Target: 10, Positions: []int{0, 1, 2}}, []uint8{7, 3, 0}, false},
		{"sum empty region", Region{Kind: Sum, Target: 10, Positions: []int{0, 1, 2}}, []uint8{0, 0, 0}, true},
		{"product divides", Region{Kind: Product, Target: 12, Positions: []int{0, 1, 2}}, []uint8{2, 0, 0}, true},
		{"product does not divide", Region{Kind: Product, Target: 12, Positions: []int{0, 1, 2}}, []uint8{5, 0, 0}, false},
		{"product empty region", Region{Kind: Product, Target: 12, Positions: []int{0, 1, 2}}, []uint8{0, 0, 0}, true},
		{"difference never prunes", Region{Kind: Difference, Target: 100, Positions: []int{0, 1, 2}}, []uint8{8, 8, 0}, true},
		{"quotient never prunes", Region{Kind: Quotient, Target: 100, Positions: []int{0, 1, 2}}, []uint8{8, 8, 0}, true},
		{"unique still distinct", Region{Kind: RowUnique, Positions: []int{0, 1, 2}}, []uint8{1, 2, 0}, true},
		{"unique duplicate", Region{Kind: RowUnique, Positions: []int{0, 1, 2}}, []uint8{3, 3, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(tt.r.IsValid(board(tt.cells...)), tt.want)
		})
	}
}

func TestIsValidUnprunedAcceptsAnyPartialFill(t *testing.T) {
	is := is.New(t)
	r := Region{Kind: Sum, Target: 3, Positions: []int{0, 1}}
	// Partial sum already exceeds the target; only the pruning check rejects it.
	b := board(8, 0)
	is.Equal(r.IsValid(b), false)
	is.True(r.IsValidUnpruned(b))
	// Completed regions are rejected by both.
	full := board(8, 8)
	is.Equal(r.IsValid(full), false)
	is.Equal(r.IsValidUnpruned(full), false)
}

func TestLines(t *testing.T) {
	is := is.New(t)
	regs := Lines(3)
	is.Equal(len(regs), 6)
	rows, cols := 0, 0
	for _, r := range regs {
		is.Equal(len(r.Positions), 3)
		switch r.Kind {
		case RowUnique:
			rows++
		case ColUnique:
			cols++
		}
	}
	is.Equal(rows, 3)
	is.Equal(cols, 3)
}

func TestNewIndexFullCoverage(t *testing.T) {
	is := is.New(t)
	cages := []Region{
		{Kind: Sum, Target: 3, Positions: []int{0, 1}},
		{Kind: Sum, Target: 3, Positions: []int{2, 3}},
	}
	idx, err := NewIndex(2, append(cages, Lines(2)...))
	is.NoErr(err)
	is.Equal(idx.Size, 2)
	is.Equal(idx.Digits, 2)
	for p := 0; p < 4; p++ {
		is.Equal(len(idx.ByCell[p]), 3) // cage, row, column
	}
}

func TestNewIndexRejectsMalformedRegions(t *testing.T) {
	tests := []struct {
		name string
		regs []Region
	}{
		{"position out of range", []Region{{Kind: Sum, Target: 1, Positions: []int{4}}}},
		{"empty region", []Region{{Kind: Sum, Target: 1}}},
		{"repeated position", []Region{{Kind: Sum, Target: 2, Positions: []int{0, 0}}}},
		{"uncovered cell", []Region{{Kind: Sum, Target: 2, Positions: []int{0, 1, 2}}}},
		{"cell in two cages", []Region{
			{Kind: Sum, Target: 2, Positions: []int{0, 1, 2, 3}},
			{Kind: Product, Target: 2, Positions: []int{0}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			_, err := NewIndex(2, tt.regs)
			is.True(errors.Is(err, ErrInvalidPuzzle))
		})
	}
}

func TestNewIndexDigitsRejectsSmallDomain(t *testing.T) {
	is := is.New(t)
	_, err := NewIndexDigits(3, 2, Lines(3))
	is.True(errors.Is(err, ErrInvalidPuzzle))
}
