package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var kvSchemaFS embed.FS

// upgradeKVSchema applies the embedded kv table migrations to the
// database at dbPath and reports the resulting schema version. Running it
// against an up-to-date database is a no-op.
func upgradeKVSchema(dbPath string) (uint, error) {
	// The migrator closes its connection, so it never gets the backend's pool.
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open kv schema database: %w", err)
	}
	defer conn.Close()

	target, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return 0, fmt.Errorf("prepare kv schema target: %w", err)
	}
	scripts, err := iofs.New(kvSchemaFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("load kv schema scripts: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", scripts, "sqlite", target)
	if err != nil {
		return 0, fmt.Errorf("init kv schema migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migrate kv schema: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read kv schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("kv schema version %d is dirty", version)
	}
	return version, nil
}
