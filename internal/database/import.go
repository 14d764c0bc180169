package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/nao1215/passcheck/internal/listfile"
)

// ImportResult describes one completed import.
type ImportResult struct {
	// Lines is the number of lines read from the source.
	Lines int64

	// Inserted is the number of entries that were not already in the index.
	Inserted int64
}

// importConfig holds the settings of one Import call.
type importConfig struct {
	replace bool
}

// ImportOption configures Import.
type ImportOption func(*importConfig)

// WithReplace removes every indexed entry and the import history before the
// new entries are added. Removal and import share one transaction, so a
// failed import leaves the previous index in place.
func WithReplace() ImportOption {
	return func(c *importConfig) {
		c.replace = true
	}
}

// execer is implemented by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Import reads newline-delimited entries from r and adds them to the index
// in a single transaction. Lines are read with listfile.Reader, the same way
// the file-backed blacklist reads its source. source is recorded in the
// import history.
func (bdb *BlacklistDB) Import(ctx context.Context, r io.Reader, source string, opts ...ImportOption) (ImportResult, error) {
	var cfg importConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var result ImportResult

	tx, err := bdb.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if cfg.replace {
		if err := deleteAll(ctx, tx); err != nil {
			return result, err
		}
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO entries (value) VALUES (?)`)
	if err != nil {
		return result, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	lr := listfile.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !lr.Next() {
			break
		}

		res, err := stmt.ExecContext(ctx, lr.Entry())
		if err != nil {
			return result, fmt.Errorf("failed to insert entry: %w", err)
		}
		result.Lines++
		if n, err := res.RowsAffected(); err == nil {
			result.Inserted += n
		}
	}
	if err := lr.Err(); err != nil {
		return result, fmt.Errorf("failed to read blacklist source: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sources (path, lines, inserted, imported_at) VALUES (?, ?, ?, ?)`,
		source, result.Lines, result.Inserted, time.Now().UTC().Format(timestampLayout),
	); err != nil {
		return result, fmt.Errorf("failed to record import source: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit import: %w", err)
	}
	return result, nil
}

// deleteAll removes every entry and the import history.
func deleteAll(ctx context.Context, db execer) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM sources`); err != nil {
		return fmt.Errorf("failed to delete sources: %w", err)
	}
	return nil
}
