// Package solver implements the backtracking search over a region index.
//
// The engine mutates one single board in place. Only cells below the current
// recursion depth are ever filled, digits are tried in ascending order, and a
// cell is cleared again after its digit loop, so solutions come out in
// lexicographic order of the board read position 0 first. Every solution is
// yielded as an independent copy; the shared board is reused immediately
// afterwards.
package solver

import (
	"context"
	"iter"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/progress"
	"svw.info/calcudoku/internal/region"
)

// solutions is the engine shared by Backtracker and Exhaustive. With prune
// set, every region touching the just-filled cell must pass its partial
// check; without it only completed regions are tested. nodes, when non-nil,
// receives one increment per visited search node.
func solutions(ctx context.Context, idx *region.Index, prune bool, prog *progress.Tracker, nodes *int) iter.Seq[*domain.Board] {
	return func(yield func(*domain.Board) bool) {
		b := domain.NewBoard(idx.Size)
		var dfs func(pos int, fraction, step float64) bool
		dfs = func(pos int, fraction, step float64) bool {
			if nodes != nil {
				*nodes++
			}
			prog.Node(fraction)
			if ctx.Err() != nil {
				return false
			}
			if pos == len(b.Cells) {
				prog.Pause()
				if !yield(b.Clone()) {
					return false
				}
				prog.Resume()
				return true
			}
			for v := 1; v <= idx.Digits; v++ {
				b.Cells[pos] = uint8(v)
				if regionsValid(idx.ByCell[pos], b, prune) {
					// step is Digits^-(pos+1): committing to digit v
					// skips past (v-1) subtrees of that nominal weight.
					if !dfs(pos+1, fraction+step*float64(v-1), step/float64(idx.Digits)) {
						return false
					}
				}
			}
			b.Cells[pos] = 0
			return true
		}
		if dfs(0, 0, 1/float64(idx.Digits)) {
			prog.Finish()
		}
	}
}

func regionsValid(regs []region.Region, b *domain.Board, prune bool) bool {
	for _, r := range regs {
		if prune {
			if !r.IsValid(b) {
				return false
			}
		} else if !r.IsValidUnpruned(b) {
			return false
		}
	}
	return true
}
