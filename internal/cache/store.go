package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Key identifies one cached translation.
type Key struct {
	Backend string
	Source  string
	Target  string
	Text    string
}

func (k Key) valid() bool {
	return k.Backend != "" && k.Source != "" && k.Target != "" && strings.TrimSpace(k.Text) != ""
}

// Store manages translation persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Lookup returns the cached translation for key, if present.
func (s *Store) Lookup(ctx context.Context, key Key) (string, bool, error) {
	if s == nil || s.db == nil || !key.valid() {
		return "", false, nil
	}
	var translated string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT translated FROM translations
         WHERE backend = ? AND source_lang = ? AND target_lang = ? AND source_text = ?`,
		key.Backend, key.Source, key.Target, key.Text,
	).Scan(&translated)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup translation: %w", err)
	}
	if _, err := s.db.ExecContext(
		ctx,
		`UPDATE translations SET hits = hits + 1
         WHERE backend = ? AND source_lang = ? AND target_lang = ? AND source_text = ?`,
		key.Backend, key.Source, key.Target, key.Text,
	); err != nil {
		return "", false, fmt.Errorf("record cache hit: %w", err)
	}
	return translated, true, nil
}

// Put records a translation. Empty translations are never stored so a failed
// attempt does not poison later runs.
func (s *Store) Put(ctx context.Context, key Key, translated string) error {
	if s == nil || s.db == nil || !key.valid() {
		return nil
	}
	if strings.TrimSpace(translated) == "" {
		return nil
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO translations (backend, source_lang, target_lang, source_text, translated, created_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT (backend, source_lang, target_lang, source_text)
         DO UPDATE SET translated = excluded.translated, created_at = excluded.created_at`,
		key.Backend, key.Source, key.Target, key.Text, translated,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store translation: %w", err)
	}
	return nil
}

// Count returns the number of cached translations.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM translations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count translations: %w", err)
	}
	return n, nil
}
