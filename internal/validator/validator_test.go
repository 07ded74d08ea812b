package validator

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/parser"
	"svw.info/calcudoku/internal/region"
)

const small = `A=3 +
B=3 +
START
A A
B B
`

func TestValidateSolvedBoard(t *testing.T) {
	is := is.New(t)
	idx, err := parser.ParseString(small, 2)
	is.NoErr(err)
	b := &domain.Board{Size: 2, Cells: []uint8{1, 2, 2, 1}}
	ok, conflicts, err := New().Validate(context.Background(), idx, b)
	is.NoErr(err)
	is.True(ok)
	is.Equal(len(conflicts), 0)
}

func TestValidateReportsViolatedRegions(t *testing.T) {
	is := is.New(t)
	idx, err := parser.ParseString(small, 2)
	is.NoErr(err)
	// Row 0 duplicates and the A cage misses its sum.
	b := &domain.Board{Size: 2, Cells: []uint8{1, 1, 2, 2}}
	ok, conflicts, err := New().Validate(context.Background(), idx, b)
	is.NoErr(err)
	is.True(!ok)
	is.True(len(conflicts) > 0)
	// Conflicts come back sorted row-major.
	for i := 1; i < len(conflicts); i++ {
		prev, cur := conflicts[i-1], conflicts[i]
		is.True(prev.Row < cur.Row || (prev.Row == cur.Row && prev.Col < cur.Col))
	}
}

func TestValidatePartialBoardUsesPartialChecks(t *testing.T) {
	is := is.New(t)
	idx, err := parser.ParseString(small, 2)
	is.NoErr(err)
	// One filled cell, nothing violated yet.
	ok, _, err := New().Validate(context.Background(), idx, &domain.Board{Size: 2, Cells: []uint8{1, 0, 0, 0}})
	is.NoErr(err)
	is.True(ok)
}

func TestValidateRejectsWrongBoardShape(t *testing.T) {
	is := is.New(t)
	idx, err := parser.ParseString(small, 2)
	is.NoErr(err)
	_, _, err = New().Validate(context.Background(), idx, &domain.Board{Size: 3, Cells: make([]uint8, 9)})
	is.True(errors.Is(err, region.ErrInvalidPuzzle))

	_, _, err = New().Validate(context.Background(), idx, &domain.Board{Size: 2, Cells: []uint8{9, 0, 0, 0}})
	is.True(errors.Is(err, region.ErrInvalidPuzzle))
}
