// Package sqlite provides a SQLite implementation of the Store and Settings ports.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/logitrust/internal/infrastructure/config"
)

// Repository implements ports.Store and ports.Settings using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Each ":memory:" connection is its own database.
	db.SetMaxOpenConns(1)

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Sites (append-only)
	CREATE TABLE IF NOT EXISTS places (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		place_type TEXT NOT NULL,
		lat REAL,
		lng REAL,
		formatted_address TEXT NOT NULL DEFAULT '',
		map_provider_pref TEXT NOT NULL DEFAULT ''
	);

	-- Constraint fields (one row per place and field)
	CREATE TABLE IF NOT EXISTS constraints (
		id TEXT PRIMARY KEY,
		place_id TEXT NOT NULL,
		field_key TEXT NOT NULL,
		label TEXT NOT NULL,
		value TEXT NOT NULL,
		unit TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(place_id, field_key)
	);

	-- Edit requests
	CREATE TABLE IF NOT EXISTS edit_requests (
		id TEXT PRIMARY KEY,
		place_id TEXT NOT NULL,
		constraint_id TEXT NOT NULL DEFAULT '',
		field_key TEXT NOT NULL,
		field_label TEXT NOT NULL,
		current_value TEXT NOT NULL DEFAULT '',
		requested_value TEXT NOT NULL,
		requested_by TEXT NOT NULL,
		requested_by_name TEXT NOT NULL,
		requested_by_role TEXT NOT NULL,
		status TEXT NOT NULL,
		evidence_files TEXT NOT NULL DEFAULT '[]',
		note TEXT NOT NULL DEFAULT '',
		reviewer_id TEXT NOT NULL DEFAULT '',
		reviewer_note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		decided_at TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_edit_requests_place ON edit_requests(place_id, field_key);
	CREATE INDEX IF NOT EXISTS idx_edit_requests_status ON edit_requests(status);

	-- Driver reviews
	CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		place_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		tip_text TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_reviews_place ON reviews(place_id);

	-- Approved change history (immutable)
	CREATE TABLE IF NOT EXISTS place_versions (
		id TEXT PRIMARY KEY,
		place_id TEXT NOT NULL,
		source_request_id TEXT NOT NULL,
		field_key TEXT NOT NULL,
		label TEXT NOT NULL,
		old_value TEXT NOT NULL,
		new_value TEXT NOT NULL,
		approved_by TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_place_versions_place ON place_versions(place_id);

	-- Per-user notifications
	CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		message TEXT NOT NULL,
		link TEXT NOT NULL DEFAULT '',
		is_read INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);

	-- Dispatcher announcements
	CREATE TABLE IF NOT EXISTS announcements (
		id TEXT PRIMARY KEY,
		place_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_by TEXT NOT NULL,
		created_at TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1
	);

	-- Key-value session settings
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Get returns a setting value.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a setting value.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("saving setting %s: %w", key, err)
	}
	return nil
}

// Delete removes a setting.
func (r *Repository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting setting %s: %w", key, err)
	}
	return nil
}

// Timestamps are stored as RFC 3339 text so ordering and round trips are exact.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(data), nil
}

func decodeList(s string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
