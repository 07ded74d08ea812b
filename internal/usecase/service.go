package usecase

import (
	"context"
	"errors"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/parser"
	"svw.info/calcudoku/internal/ports"
	"svw.info/calcudoku/internal/region"
)

// Service is the application facade: it parses puzzle sources into region
// indexes and drives the configured ports.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) index(src string, size int) (*region.Index, error) {
	if size <= 0 {
		size = parser.DefaultSize
	}
	return parser.ParseString(src, size)
}

func (u *Service) Solve(ctx context.Context, src string, size int) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	idx, err := u.index(src, size)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, idx)
}

func (u *Service) Count(ctx context.Context, src string, size, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	idx, err := u.index(src, size)
	if err != nil {
		return 0, ports.Stats{}, err
	}
	return u.Solver.CountSolutions(ctx, idx, limit)
}

func (u *Service) Validate(ctx context.Context, src string, size int, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	idx, err := u.index(src, size)
	if err != nil {
		return false, nil, err
	}
	return u.Validator.Validate(ctx, idx, b)
}

func (u *Service) Hint(ctx context.Context, src string, size int, b *domain.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	idx, err := u.index(src, size)
	if err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, idx, b)
}

// Persistence

// Save stores a puzzle after checking that its source actually parses, so
// the store only ever holds well-formed puzzles.
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p.Size <= 0 {
		p.Size = parser.DefaultSize
	}
	if _, err := u.index(p.Source, p.Size); err != nil {
		return err
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
