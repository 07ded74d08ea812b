// Package storage persists puzzles in a SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"svw.info/calcudoku/internal/domain"
)

// ErrNotFound is returned by Load for an unknown puzzle id.
var ErrNotFound = errors.New("puzzle not found")

// SQLite stores puzzles in a single-file database, created and migrated on
// open. The driver is pure Go, so the binary stays cgo-free.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		size INTEGER NOT NULL,
		source TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_puzzles_created_at ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLite) Close() error { return s.db.Close() }

// Save inserts or replaces a puzzle, assigning an id and creation time when
// missing.
func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("nil puzzle")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO puzzles (id, name, size, source, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Size, p.Source, p.Notes, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("save puzzle %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var p domain.Puzzle
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, size, source, notes, created_at FROM puzzles WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Size, &p.Source, &p.Notes, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, size, created_at FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()
	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Size, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
