// Package audit keeps an append-only local log of analyses. The log is
// advisory: any database failure degrades to a no-op logger with a
// stderr warning so contract analysis itself is never blocked.
package audit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type Logger struct {
	db *sql.DB
}

// Entry is one recorded analysis.
type Entry struct {
	ID        int64     `json:"id"`
	Path      string    `json:"path"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// Open creates or opens the audit database at path. An empty path
// resolves to ~/.clauseguard/audit.db. Failures return a usable no-op
// logger.
func Open(path string) *Logger {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audit log disabled, cannot resolve home dir: %v\n", err)
			return &Logger{}
		}
		dir := filepath.Join(home, ".clauseguard")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audit log disabled, cannot create %s: %v\n", dir, err)
			return &Logger{}
		}
		path = filepath.Join(dir, "audit.db")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audit log disabled, cannot open %s: %v\n", path, err)
		return &Logger{}
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS analysis_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		summary TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audit log disabled, cannot create table: %v\n", err)
		_ = db.Close()
		return &Logger{}
	}
	return &Logger{db: db}
}

// Disabled returns a logger that records nothing.
func Disabled() *Logger {
	return &Logger{}
}

// LogAnalysis records one completed analysis. Write failures warn and
// continue.
func (l *Logger) LogAnalysis(path, summary string) {
	if l == nil || l.db == nil {
		return
	}
	_, err := l.db.Exec(
		"INSERT INTO analysis_log (path, summary) VALUES (?, ?)",
		path, summary,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write audit log: %v\n", err)
	}
}

// Recent returns the most recent analyses, newest first.
func (l *Logger) Recent(limit int) ([]Entry, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	rows, err := l.db.Query(
		"SELECT id, path, summary, created_at FROM analysis_log ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Path, &e.Summary, &e.CreatedAt); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (l *Logger) Close() {
	if l != nil && l.db != nil {
		_ = l.db.Close()
	}
}
