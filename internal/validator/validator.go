// Package validator checks whole boards against a region index, reporting
// the cells of every violated region. Partial boards use the same partial
// validity the solver prunes with, so "valid" here means "could still be
// completed" for incomplete regions.
package validator

import (
	"context"
	"fmt"
	"sort"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/region"
)

type Regions struct{}

func New() *Regions { return &Regions{} }

func (v *Regions) Validate(ctx context.Context, idx *region.Index, b *domain.Board) (bool, []domain.CellCoord, error) {
	if len(b.Cells) != idx.Size*idx.Size {
		return false, nil, fmt.Errorf("board has %d cells, index wants %d: %w",
			len(b.Cells), idx.Size*idx.Size, region.ErrInvalidPuzzle)
	}
	for _, val := range b.Cells {
		if int(val) > idx.Digits {
			return false, nil, fmt.Errorf("cell value %d outside 1..%d: %w", val, idx.Digits, region.ErrInvalidPuzzle)
		}
	}
	seen := make(map[int]bool)
	var conf []domain.CellCoord
	for _, r := range idx.Regions {
		if r.IsValid(b) {
			continue
		}
		for _, p := range r.Positions {
			if !seen[p] {
				seen[p] = true
				conf = append(conf, domain.Coord(p, idx.Size))
			}
		}
	}
	sort.Slice(conf, func(i, j int) bool {
		if conf[i].Row != conf[j].Row {
			return conf[i].Row < conf[j].Row
		}
		return conf[i].Col < conf[j].Col
	})
	return len(conf) == 0, conf, nil
}
