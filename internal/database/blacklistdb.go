package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// DBFileName is the file name of the index inside its directory.
const DBFileName = "blacklist.db"

// BlacklistDB is a SQLite index of blacklisted passwords.
type BlacklistDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file. Empty when the
	// BlacklistDB wraps an existing connection.
	dbPath string
}

// Options configures BlacklistDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	// Otherwise a missing index is reported as ErrIndexNotFound instead of
	// silently creating an empty one.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool

	// ReadOnly opens an existing index with mode=ro and skips schema
	// creation, so a lookup never writes to the index.
	ReadOnly bool
}

// DefaultOptions returns the options used when building an index.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// ReadOnlyOptions returns the options used when querying an existing index.
func ReadOnlyOptions() Options {
	return Options{
		ReadOnly: true,
	}
}

// Open opens or creates the index in dbDir.
func Open(dbDir string, opts Options) (*BlacklistDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	var dsn string
	if opts.CreateIfNotExists && !opts.ReadOnly {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = dbPath + "?mode=rwc"
	} else {
		if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
		if opts.ReadOnly {
			dsn = dbPath + "?mode=ro"
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	bdb := &BlacklistDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.ReadOnly {
		return bdb, nil
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := bdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return bdb, nil
}

// New wraps an already opened connection whose schema exists.
func New(db *sql.DB) *BlacklistDB {
	return &BlacklistDB{db: db}
}

// Close closes the database connection.
func (bdb *BlacklistDB) Close() error {
	return bdb.db.Close()
}

// Path returns the database file path.
func (bdb *BlacklistDB) Path() string {
	return bdb.dbPath
}

func (bdb *BlacklistDB) createTables() error {
	schema := `
	-- One row per distinct blacklist line
	CREATE TABLE IF NOT EXISTS entries (
		value TEXT PRIMARY KEY
	) WITHOUT ROWID;

	-- Import history
	CREATE TABLE IF NOT EXISTS sources (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		lines INTEGER NOT NULL,
		inserted INTEGER NOT NULL,
		imported_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sources_imported_at ON sources(imported_at);
	`

	_, err := bdb.db.ExecContext(context.Background(), schema)
	return err
}

// Contains reports whether value is an entry of the index. The comparison is
// exact and case-sensitive.
func (bdb *BlacklistDB) Contains(ctx context.Context, value string) (bool, error) {
	var one int
	err := bdb.db.QueryRowContext(ctx, `SELECT 1 FROM entries WHERE value = ? LIMIT 1`, value).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query blacklist index: %w", err)
	}
	return true, nil
}

// Count returns the number of distinct entries.
func (bdb *BlacklistDB) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := bdb.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count blacklist entries: %w", err)
	}
	return n, nil
}


// Source is one recorded import.
type Source struct {
	ID         int64
	Path       string
	Lines      int64
	Inserted   int64
	ImportedAt time.Time
}

// Sources returns the import history, newest first.
func (bdb *BlacklistDB) Sources(ctx context.Context) ([]Source, error) {
	rows, err := bdb.db.QueryContext(ctx,
		`SELECT id, path, lines, inserted, imported_at FROM sources ORDER BY imported_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		var s Source
		var importedAt string
		if err := rows.Scan(&s.ID, &s.Path, &s.Lines, &s.Inserted, &importedAt); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		s.ImportedAt = parseTimestamp(importedAt)
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sources: %w", err)
	}
	return sources, nil
}

// timestampLayout has a fixed width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
}

// parseTimestamp tries each known format and returns the zero time if none match.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
