// Package hint suggests placements a human could deduce directly.
package hint

import (
	"context"
	"fmt"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/region"
)

// Singles finds sole candidates: empty cells where exactly one digit keeps
// every touching region valid. Advisory only; the solver never consults it.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first sole candidate in position order.
func (h *Singles) Hint(ctx context.Context, idx *region.Index, b *domain.Board) (domain.Hint, bool, error) {
	for pos := range b.Cells {
		if b.Cells[pos] != 0 {
			continue
		}
		v, ok := soleCandidate(idx, b, pos)
		if ok {
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", v),
				Cell:    domain.Coord(pos, idx.Size),
				Value:   v,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// soleCandidate tries each digit in the cell and counts the ones every
// touching region accepts. The cell is restored before returning.
func soleCandidate(idx *region.Index, b *domain.Board, pos int) (uint8, bool) {
	var last uint8
	count := 0
	for v := 1; v <= idx.Digits; v++ {
		b.Cells[pos] = uint8(v)
		if allValid(idx.ByCell[pos], b) {
			count++
			last = uint8(v)
			if count > 1 {
				break
			}
		}
	}
	b.Cells[pos] = 0
	return last, count == 1
}

func allValid(regs []region.Region, b *domain.Board) bool {
	for _, r := range regs {
		if !r.IsValid(b) {
			return false
		}
	}
	return true
}
