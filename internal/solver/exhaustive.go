package solver

import (
	"context"
	"iter"
	"time"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/ports"
	"svw.info/calcudoku/internal/region"
)

// Exhaustive enumerates the same search tree as Backtracker but with partial
// validity disabled, so only completed regions ever reject a branch. It
// visits vastly more nodes and exists as the reference implementation: the
// two engines must produce identical solution sequences, otherwise a partial
// check is unsound.
type Exhaustive struct{}

func NewExhaustive() *Exhaustive { return &Exhaustive{} }

var _ ports.Solver = (*Exhaustive)(nil)

// Solutions returns the lazy sequence of all solutions in lexicographic order.
func (s *Exhaustive) Solutions(ctx context.Context, idx *region.Index) iter.Seq[*domain.Board] {
	return solutions(ctx, idx, false, nil, nil)
}

// Solve returns the first solution, or ErrNoSolution.
func (s *Exhaustive) Solve(ctx context.Context, idx *region.Index) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var out *domain.Board
	for b := range solutions(ctx, idx, false, nil, &nodes) {
		out = b
		break
	}
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if out == nil {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	return out, st, nil
}

// CountSolutions counts solutions, stopping once limit is reached (0 counts
// them all).
func (s *Exhaustive) CountSolutions(ctx context.Context, idx *region.Index, limit int) (int, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0
	for range solutions(ctx, idx, false, nil, &nodes) {
		count++
		if limit > 0 && count >= limit {
			break
		}
	}
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
