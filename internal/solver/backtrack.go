package solver

import (
	"context"
	"errors"
	"iter"
	"time"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/ports"
	"svw.info/calcudoku/internal/progress"
	"svw.info/calcudoku/internal/region"
)

// ErrNoSolution is returned by Solve when the sequence is empty. An empty
// sequence is the puzzle's only failure mode; it is not a solver error.
var ErrNoSolution = errors.New("no solution")

// Backtracker is the pruning depth-first solver. The zero value is ready to
// use; set Progress to report search coverage on a diagnostic stream.
type Backtracker struct {
	Progress *progress.Tracker
}

func NewBacktracker() *Backtracker { return &Backtracker{} }

var _ ports.Solver = (*Backtracker)(nil)

// Solutions returns the lazy sequence of all solutions in lexicographic
// order. The search suspends at each yield and resumes where it left off;
// breaking out of the range abandons the rest of the search. Each call starts
// a fresh search with its own board.
func (s *Backtracker) Solutions(ctx context.Context, idx *region.Index) iter.Seq[*domain.Board] {
	return solutions(ctx, idx, true, s.Progress, nil)
}

// Solve returns the first solution, or ErrNoSolution.
func (s *Backtracker) Solve(ctx context.Context, idx *region.Index) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var out *domain.Board
	for b := range solutions(ctx, idx, true, s.Progress, &nodes) {
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
func (s *Backtracker) CountSolutions(ctx context.Context, idx *region.Index, limit int) (int, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0
	for range solutions(ctx, idx, true, s.Progress, &nodes) {
		count++
		if limit > 0 && count >= limit {
			break
		}
	}
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
