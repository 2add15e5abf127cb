// Package database opens and classifies storage connections. Tascora runs
// against either an embedded SQLite file or a Postgres server, selected by
// the DATABASE_URL scheme.
package database

import (
	"os"
	"path/filepath"
	"strings"
)

// Driver identifies the storage backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// DetectDriver classifies a database URL. Postgres URLs carry a
// postgres:// or postgresql:// scheme; anything else is treated as a
// SQLite file path.
func DetectDriver(databaseURL string) Driver {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// DefaultSQLitePath returns the default location of the SQLite database.
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tascora.db"
	}
	return filepath.Join(home, ".tascora", "tascora.db")
}

// EnsureDirectory creates the parent directory for a database file.
func EnsureDirectory(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
