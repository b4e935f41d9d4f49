package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focuslock/internal/modules/settings/domain"
	settingsout "focuslock/internal/modules/settings/port/out"

	_ "modernc.org/sqlite"
)

const settingsKey = "focuslock"

// SQLiteSettingsStore keeps the settings document as a JSON blob in a single
// row, mirroring the extension's key/value storage area.
type SQLiteSettingsStore struct {
	db *sql.DB
}

var _ settingsout.SettingsStore = (*SQLiteSettingsStore)(nil)

func NewSQLiteSettingsStore(dbPath string) (*SQLiteSettingsStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSettingsStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSettingsStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create settings table: %w", err)
	}
	return nil
}

func (s *SQLiteSettingsStore) Load(ctx context.Context) (domain.Document, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, settingsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, nil
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("query settings: %w", err)
	}
	doc := domain.Document{}
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		return domain.Document{}, fmt.Errorf("decode settings: %w", err)
	}
	return doc, nil
}

func (s *SQLiteSettingsStore) Save(ctx context.Context, doc domain.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	const stmt = `
INSERT INTO settings (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	if _, err := s.db.ExecContext(ctx, stmt, settingsKey, string(payload), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (s *SQLiteSettingsStore) Close() error {
	return s.db.Close()
}
