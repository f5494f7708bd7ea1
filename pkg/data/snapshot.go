package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS characters (
	position    INTEGER NOT NULL,
	name        VARCHAR NOT NULL,
	gender      VARCHAR NOT NULL,
	culture     VARCHAR NOT NULL,
	born        VARCHAR NOT NULL,
	died        VARCHAR NOT NULL,
	aliases     VARCHAR NOT NULL,
	tv_series   VARCHAR NOT NULL,
	played_by   VARCHAR NOT NULL,
	exported_at TIMESTAMP NOT NULL
)`

// InitDuckDB opens (or creates) the database at path and makes sure the
// characters table exists.
func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Repository writes fetched character lists to a DuckDB file. The app never
// reads a snapshot back; it exists for offline analysis of an export.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewDuckDBRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db, now: time.Now}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveSnapshot replaces the stored list with characters, keeping their order.
func (r *Repository) SaveSnapshot(ctx context.Context, characters []Character) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM characters`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO characters (position, name, gender, culture, born, died, aliases, tv_series, played_by, exported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	exportedAt := r.now().UTC()
	for i, c := range characters {
		aliases, tvSeries, playedBy, err := encodeLists(c)
		if err != nil {
			return fmt.Errorf("character %q: %w", c.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, i, c.Name, c.Gender, c.Culture, c.Born, c.Died,
			aliases, tvSeries, playedBy, exportedAt); err != nil {
			return fmt.Errorf("failed to insert character %q: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// ListCharacters returns the stored snapshot in its original order. The app
// never reads snapshots back; this exists to verify what an export wrote.
func (r *Repository) ListCharacters(ctx context.Context) ([]Character, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, gender, culture, born, died, aliases, tv_series, played_by
		FROM characters
		ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Character{}
	for rows.Next() {
		var c Character
		var aliases, tvSeries, playedBy string
		if err := rows.Scan(&c.Name, &c.Gender, &c.Culture, &c.Born, &c.Died,
			&aliases, &tvSeries, &playedBy); err != nil {
			return nil, err
		}
		if err := decodeLists(&c, aliases, tvSeries, playedBy); err != nil {
			return nil, fmt.Errorf("character %q: %w", c.Name, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters`).Scan(&n)
	return n, err
}

// Lists are stored as JSON text so they round-trip without relying on
// driver support for LIST parameters.
func encodeLists(c Character) (string, string, string, error) {
	var out [3]string
	for i, list := range [][]string{c.Aliases, c.TVSeries, c.PlayedBy} {
		if list == nil {
			list = []string{}
		}
		b, err := json.Marshal(list)
		if err != nil {
			return "", "", "", err
		}
		out[i] = string(b)
	}
	return out[0], out[1], out[2], nil
}

func decodeLists(c *Character, aliases, tvSeries, playedBy string) error {
	if err := json.Unmarshal([]byte(aliases), &c.Aliases); err != nil {
		return fmt.Errorf("aliases: %w", err)
	}
	if err := json.Unmarshal([]byte(tvSeries), &c.TVSeries); err != nil {
		return fmt.Errorf("tvSeries: %w", err)
	}
	if err := json.Unmarshal([]byte(playedBy), &c.PlayedBy); err != nil {
		return fmt.Errorf("playedBy: %w", err)
	}
	return nil
}
