// Package region defines the constraint regions a calcudoku board is
// partitioned into, and the position→regions index the solver prunes with.
package region

import "svw.info/calcudoku/internal/domain"

// Kind enumerates the closed set of region rules.
type Kind uint8

const (
	Sum Kind = iota
	Product
	Difference
	Quotient
	RowUnique
	ColUnique
)

func (k Kind) String() string {
	switch k {
	case Sum:
		return "sum"
	case Product:
		return "product"
	case Difference:
		return "difference"
	case Quotient:
		return "quotient"
	case RowUnique:
		return "row"
	case ColUnique:
		return "column"
	}
	return "unknown"
}

// Cage reports whether the kind is one of the arithmetic rules that come from
// the puzzle definition, as opposed to a synthesized row/column region.
func (k Kind) Cage() bool { return k <= Quotient }

// Region is an immutable constraint over a fixed set of board positions.
// Target is meaningless for the uniqueness kinds. Regions hold no puzzle
// state; they are shared read-only by every recursive call of the solver.
type Region struct {
	Kind      Kind
	Target    int
	Positions []int
}

// IsValid reports whether the board is acceptable as far as this region is
// concerned. A fully filled region must satisfy its rule exactly; a partially
// filled one only has to pass a cheap necessary condition, so the solver can
// prune hopeless branches early.
func (r Region) IsValid(b *domain.Board) bool { return r.valid(b, true) }

// IsValidUnpruned is IsValid with the partial check disabled: incomplete
// regions are always accepted, only completed ones are tested. The reference
// engine uses it to cross-check that pruning never drops solutions.
func (r Region) IsValidUnpruned(b *domain.Board) bool { return r.valid(b, false) }

func (r Region) valid(b *domain.Board, prune bool) bool {
	squares := make([]int, 0, len(r.Positions))
	for _, p := range r.Positions {
		if v := b.Cells[p]; v != 0 {
			squares = append(squares, int(v))
		}
	}
	if len(squares) == len(r.Positions) {
		return r.fullValid(squares)
	}
	if !prune {
		return true
	}
	return r.partialValid(squares)
}

func (r Region) fullValid(squares []int) bool {
	switch r.Kind {
	case Sum:
		return sum(squares) == r.Target
	case Product:
		return product(squares) == r.Target
	case Difference:
		// Largest minus the sum of the rest equals the target.
		m := max(squares)
		return m == sum(squares)-m+r.Target
	case Quotient:
		// m * target == product(rest), kept in integer arithmetic so no
		// division or float comparison is ever needed. product(squares)
		// already includes m once, hence the m*m on the left.
		m := max(squares)
		return m*m*r.Target == product(squares)
	case RowUnique, ColUnique:
		return distinct(squares)
	}
	return false
}

// partialValid must never reject a state that could still complete validly.
// Difference and Quotient have no known cheap sound test, so they accept
// everything until full; only the final check catches their violations.
func (r Region) partialValid(squares []int) bool {
	switch r.Kind {
	case Sum:
		// Digits are positive, so the sum only grows.
		return sum(squares) < r.Target
	case Product:
		return r.Target%product(squares) == 0
	case Difference, Quotient:
		return true
	case RowUnique, ColUnique:
		// Uniqueness is monotonic: a duplicate never repairs itself.
		return distinct(squares)
	}
	return false
}

func sum(squares []int) int {
	s := 0
	for _, v := range squares {
		s += v
	}
	return s
}

func product(squares []int) int {
	p := 1
	for _, v := range squares {
		p *= v
	}
	return p
}

func max(squares []int) int {
	m := squares[0]
	for _, v := range squares[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func distinct(squares []int) bool {
	var seen uint64
	for _, v := range squares {
		bit := uint64(1) << uint(v)
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}
