package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores documents in a single kv table.
type SQLiteBackend struct {
	db            *sql.DB
	schemaVersion uint
}

// NewSQLiteBackend opens (creating if needed) the database at dbPath and
// applies the embedded migrations.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := upgradeKVSchema(dbPath)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteBackend{db: db, schemaVersion: version}, nil
}

// SchemaVersion is the kv schema version applied when the backend opened.
func (b *SQLiteBackend) SchemaVersion() uint { return b.schemaVersion }

// Read returns the stored document or ErrNotFound.
func (b *SQLiteBackend) Read(key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

// Write inserts or replaces the document.
func (b *SQLiteBackend) Write(key string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := b.db.Exec(`
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
