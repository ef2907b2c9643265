// Package sqlite provides a key-value storage medium backed by a SQLite file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/migration"
	"github.com/julianstephens/lifetrack/migrations"
)

// busyTimeoutMs lets a second process wait for a lock instead of failing.
// Writes are still last-write-wins.
const busyTimeoutMs = 5000

type Medium struct {
	path string
	db   *sql.DB
}

func NewMedium(path string) *Medium {
	return &Medium{path: path}
}

// Init creates the database file and its directory if needed and applies
// all pending migrations. Safe to call on an existing database.
func (m *Medium) Init() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := m.open(); err != nil {
		return err
	}

	runner, err := m.Runner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Load opens an existing database and checks its schema version.
func (m *Medium) Load() error {
	if m.db != nil {
		return nil
	}

	if _, err := os.Stat(m.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'lifetrack init' first")
	}

	if err := m.open(); err != nil {
		return err
	}

	runner, err := m.Runner()
	if err != nil {
		return err
	}
	return runner.Validate()
}

func (m *Medium) open() error {
	if m.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", m.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Connection pragmas only reach the connection that ran them
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMs)); err != nil {
		db.Close()
		return fmt.Errorf("failed to configure database: %w", err)
	}
	m.db = db
	return nil
}

// Runner returns a migration runner over the open connection.
func (m *Medium) Runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(m.db, subFS), nil
}

func (m *Medium) Close() error {
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

func (m *Medium) GetItem(key string) (string, bool, error) {
	if m.db == nil {
		return "", false, fmt.Errorf("database not loaded")
	}

	var value string
	err := m.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (m *Medium) SetItem(key, value string) error {
	if m.db == nil {
		return fmt.Errorf("database not loaded")
	}

	_, err := m.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Keys lists stored keys in sorted order.
func (m *Medium) Keys() ([]string, error) {
	if m.db == nil {
		return nil, fmt.Errorf("database not loaded")
	}

	rows, err := m.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (m *Medium) GetConfigPath() string {
	return m.path
}

// GetDB returns the underlying connection, nil before Init or Load.
func (m *Medium) GetDB() *sql.DB {
	return m.db
}
