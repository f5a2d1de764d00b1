// internal/leaderboard/sqlite.go
//
// SQLite Backend.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Rewriting the leaderboard_entries table in one transaction per save.
//
// Rows carry a pos column so Load returns records in the order they were saved.
// Only usable records are stored; unparsed elements have no row.

package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/assets"
	"github.com/robalobadob/wordle/internal/game"
)

// SQLiteBackend stores the leaderboard in a SQLite database.
type SQLiteBackend struct {
	db  *sql.DB
	dsn string
}

// OpenSQLite opens (creating if missing) the database at dsn and migrates it.
func OpenSQLite(dsn string) (*SQLiteBackend, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteBackend{db: db, dsn: dsn}, nil
}

func (b *SQLiteBackend) Name() string { return "sqlite" }

// Load returns every row in pos order.
func (b *SQLiteBackend) Load(ctx context.Context) (Leaderboard, error) {
	rows, err := b.db.QueryContext(ctx, `
        SELECT name, time, date, COALESCE(mode, '')
        FROM leaderboard_entries
        ORDER BY pos ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lb := Leaderboard{}
	for rows.Next() {
		var (
			e    Entry
			date string
			mode string
		)
		if err := rows.Scan(&e.Name, &e.Time, &date, &mode); err != nil {
			return nil, err
		}
		e.Date = parseDate(date)
		e.Mode = game.Mode(mode)
		lb = append(lb, e)
	}
	return lb, rows.Err()
}

// Save replaces all rows with lb inside a single transaction.
func (b *SQLiteBackend) Save(ctx context.Context, lb Leaderboard) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard_entries`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO leaderboard_entries (pos, name, time, date, mode)
        VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, e := range lb.Records() {
		// Legacy records keep a NULL mode.
		var mode any
		if e.Mode != "" {
			mode = string(e.Mode)
		}
		if _, err := stmt.ExecContext(ctx, i, e.Name, e.Time, formatDate(e.Date), mode); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %q: %w", e.Name, err)
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

/**
 * openDB opens (and creates if missing) a SQLite database file.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/wordle.db).
 * - Configures busy timeout and WAL journaling mode.
 * - Uses a single connection: SQLite serialises writers anyway.
 */
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies the embedded sql/*.sql migrations.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each file in lexical order inside its own transaction.
 * - Skips files already recorded.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(assets.Migrations, "sql", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
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

		sqlBytes, err := fs.ReadFile(assets.Migrations, f)
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
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}
