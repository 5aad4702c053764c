package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// Completion is one row of the completions ledger: a task occurrence that
// was marked done and the points it earned.
type Completion struct {
	TaskID      uuid.UUID
	Title       string
	Points      int
	CompletedAt time.Time
}

// Ledger is the append-only SQLite record of completed occurrences. It
// feeds the points display; losing it never affects task state.
type Ledger struct {
	db *sql.DB
}

const createLedgerTable = `
CREATE TABLE IF NOT EXISTS completions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id      TEXT NOT NULL,
	title        TEXT NOT NULL,
	points       INTEGER NOT NULL,
	completed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS completions_completed_at ON completions(completed_at);
`

// OpenLedger opens (creating if needed) the completions database at path.
func OpenLedger(ctx context.Context, path string) (*Ledger, error) {
	if path == "" {
		return nil, errors.New("open ledger: path is empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping ledger: %w", err)
	}

	for _, stmt := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		_, pragmaErr := db.ExecContext(ctx, stmt)
		if pragmaErr != nil {
			_ = db.Close()

			return nil, fmt.Errorf("apply pragma %q: %w", stmt, pragmaErr)
		}
	}

	_, err = db.ExecContext(ctx, createLedgerTable)
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create completions table: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close releases the database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// AppendCompletion records one completed occurrence.
func (l *Ledger) AppendCompletion(ctx context.Context, c Completion) error {
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO completions (task_id, title, points, completed_at) VALUES (?, ?, ?, ?)",
		c.TaskID.String(), c.Title, c.Points, c.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append completion: %w", err)
	}

	return nil
}

// Recent returns the most recent completions, newest first, up to limit.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Completion, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT task_id, title, points, completed_at FROM completions ORDER BY completed_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Completion

	for rows.Next() {
		var (
			rawID string
			rawAt string
			c     Completion
		)

		scanErr := rows.Scan(&rawID, &c.Title, &c.Points, &rawAt)
		if scanErr != nil {
			return nil, fmt.Errorf("scan completion: %w", scanErr)
		}

		c.TaskID, err = uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("parse completion task id: %w", err)
		}

		c.CompletedAt, err = time.Parse(time.RFC3339, rawAt)
		if err != nil {
			return nil, fmt.Errorf("parse completion timestamp: %w", err)
		}

		out = append(out, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterate completions: %w", rowsErr)
	}

	return out, nil
}

// TotalPoints sums the points of every recorded completion.
func (l *Ledger) TotalPoints(ctx context.Context) (int, error) {
	row := l.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(points), 0) FROM completions")

	var total int

	err := row.Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum points: %w", err)
	}

	return total, nil
}
