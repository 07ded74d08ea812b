package domain

// Board is a flat sequence of Size*Size cells holding digits, with 0 meaning
// empty. There is nothing inherently two-dimensional about a calcudoku;
// regions are just subsets of cell positions, so the board stays flat and the
// row/column structure lives in the regions.
type Board struct {
	Size  int     `json:"size"`
	Cells []uint8 `json:"cells"`
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) *Board {
	return &Board{Size: size, Cells: make([]uint8, size*size)}
}

// Clone returns an independent copy. Solutions handed out by the solver are
// clones; the solver keeps mutating its own board after each one.
func (b *Board) Clone() *Board {
	out := &Board{Size: b.Size, Cells: make([]uint8, len(b.Cells))}
	copy(out.Cells, b.Cells)
	return out
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Coord converts a flat position to row/column for a board of the given size.
func Coord(pos, size int) CellCoord {
	return CellCoord{Row: pos / size, Col: pos % size}
}

// Hint describes a suggested placement.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
}

// Puzzle is a persisted calcudoku: the source text in the region-definition
// file format plus metadata. The regions themselves are reparsed on demand.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	Source    string `json:"source"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}
