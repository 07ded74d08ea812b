package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/calcudoku/internal/region"
)

const small = `A=3 +
B=3 +
START
A A
B B
`

func TestParseSmallPuzzle(t *testing.T) {
	idx, err := ParseString(small, 2)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Size)
	require.Equal(t, 2, idx.Digits)
	// 2 cages + 2 rows + 2 columns.
	require.Len(t, idx.Regions, 6)
	for p := 0; p < 4; p++ {
		require.Len(t, idx.ByCell[p], 3, "cell %d", p)
	}
	require.Equal(t, region.Region{Kind: region.Sum, Target: 3, Positions: []int{0, 1}}, idx.Regions[0])
	require.Equal(t, region.Region{Kind: region.Sum, Target: 3, Positions: []int{2, 3}}, idx.Regions[1])
}

func TestParseOperators(t *testing.T) {
	src := `A=3 +
B=2 -
C=2 *
D=1 /
START
A B
C D
`
	idx, err := ParseString(src, 2)
	require.NoError(t, err)
	require.Equal(t, region.Sum, idx.Regions[0].Kind)
	require.Equal(t, region.Difference, idx.Regions[1].Kind)
	require.Equal(t, region.Product, idx.Regions[2].Kind)
	require.Equal(t, region.Quotient, idx.Regions[3].Kind)
}

func TestParseDefaultSizeGrid(t *testing.T) {
	// Eight row-shaped cages, each summing to 36 (1+..+8).
	var b strings.Builder
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for _, n := range names {
		b.WriteString(n + "=36 +\n")
	}
	b.WriteString("START\n")
	for _, n := range names {
		row := strings.TrimSpace(strings.Repeat(n+" ", 8))
		b.WriteString(row + "\n")
	}
	idx, err := ParseString(b.String(), DefaultSize)
	require.NoError(t, err)
	require.Equal(t, 8, idx.Size)
	require.Len(t, idx.Regions, 8+16)
}

func TestParseExampleFile(t *testing.T) {
	f, err := os.Open("testdata/ex8.txt")
	require.NoError(t, err)
	defer f.Close()
	idx, err := Parse(f, DefaultSize)
	require.NoError(t, err)
	require.Equal(t, 8, idx.Size)
	// 32 domino cages plus 8 rows and 8 columns.
	require.Len(t, idx.Regions, 32+16)
	for p := 0; p < 64; p++ {
		require.Len(t, idx.ByCell[p], 3)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing START", "A=6 +\n"},
		{"malformed definition", "A3 +\nSTART\nA A\nA A\n"},
		{"bad target", "A=x +\nSTART\nA A\nA A\n"},
		{"unknown operator", "A=3 %\nSTART\nA A\nA A\n"},
		{"duplicate definition", "A=3 +\nA=4 +\nSTART\nA A\nA A\n"},
		{"undefined region token", "A=3 +\nSTART\nA A\nA B\n"},
		{"too few cells", "A=3 +\nSTART\nA A\nA\n"},
		{"too many cells", "A=3 +\nSTART\nA A\nA A A\n"},
		{"region without cells", "A=6 +\nB=1 +\nSTART\nA A\nA A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src, 2)
			require.Error(t, err)
			require.ErrorIs(t, err, region.ErrInvalidPuzzle)
		})
	}
}

func TestParseToleratesBlankLinesAndIndentation(t *testing.T) {
	src := "\nA=3 +\n\n  B=3 +\nSTART\n\n  A A\nB B\n"
	_, err := ParseString(src, 2)
	require.NoError(t, err)
}
