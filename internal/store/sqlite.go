// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database file with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Reading and writing finished rounds.

package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// timeLayout is fixed-width so finished_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLite implements Store on a local database file.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

/**
 * OpenSQLite opens (and creates if missing) the results database and
 * brings its schema up to date.
 *
 * - Ensures the parent directory exists (e.g. ~/.cli-wordle/wordle.db).
 * - Configures busy timeout and WAL journaling mode.
 * - ":memory:" is accepted for throwaway databases.
 */
func OpenSQLite(path string) (*SQLite, error) {
	dsn := path
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		dsn = path + "?_busy_timeout=5000&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases alive and serializes writes.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

/**
 * migrate applies the embedded migrations/*.sql files.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each file in lexical order inside its own transaction.
 * - Skips files already applied.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrationsFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

/**
 * Save inserts a result row.
 *
 * - Respects the session_id primary key.
 * - If a row already exists, the insert is ignored (no error).
 */
func (s *SQLite) Save(ctx context.Context, r Result) error {
	guesses, err := json.Marshal(r.Guesses)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (session_id, mode, date, target, guesses, won, elapsed_ms, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, string(r.Mode), r.Date, r.Target, string(guesses),
		boolInt(r.Won), r.Elapsed.Milliseconds(), r.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// Recent returns up to limit results, newest first. limit <= 0 means all.
func (s *SQLite) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	out, err := s.query(ctx, `
        SELECT session_id, mode, date, target, guesses, won, elapsed_ms, finished_at
        FROM results
        ORDER BY finished_at DESC, rowid DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Stats aggregates the whole history in chronological order.
func (s *SQLite) Stats(ctx context.Context) (Stats, error) {
	all, err := s.query(ctx, `
        SELECT session_id, mode, date, target, guesses, won, elapsed_ms, finished_at
        FROM results
        ORDER BY finished_at ASC, rowid ASC`)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(all), nil
}

// PlayedDaily reports whether a daily round exists for date.
func (s *SQLite) PlayedDaily(ctx context.Context, date string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM results WHERE mode=? AND date=?`,
		string(ModeDaily), date,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) query(ctx context.Context, q string, args ...any) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var (
			r                  Result
			mode, guesses, fin string
			won                int
			elapsedMs          int64
		)
		if err := rows.Scan(&r.SessionID, &mode, &r.Date, &r.Target, &guesses, &won, &elapsedMs, &fin); err != nil {
			return nil, err
		}
		r.Mode = Mode(mode)
		r.Won = won != 0
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		r.FinishedAt, _ = time.Parse(timeLayout, fin)
		if err := json.Unmarshal([]byte(guesses), &r.Guesses); err != nil {
			return nil, fmt.Errorf("decode guesses for %s: %w", r.SessionID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
