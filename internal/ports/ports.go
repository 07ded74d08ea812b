package ports

import (
	"context"
	"time"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/region"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds solutions for a prepared region index.
type Solver interface {
	// Solve returns the first solution in enumeration order.
	Solve(ctx context.Context, idx *region.Index) (*domain.Board, Stats, error)
	// CountSolutions counts solutions, stopping at limit (0 = no limit).
	CountSolutions(ctx context.Context, idx *region.Index, limit int) (int, Stats, error)
}

// Validator reports the cells of regions violated by a (possibly partial) board.
type Validator interface {
	Validate(ctx context.Context, idx *region.Index, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical placement, if one can be deduced.
type Hinter interface {
	Hint(ctx context.Context, idx *region.Index, b *domain.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
