package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDriver(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Driver
	}{
		{"postgres scheme", "postgres://localhost:5432/tascora", DriverPostgres},
		{"postgresql scheme", "postgresql://user:pass@db/tascora", DriverPostgres},
		{"file path", "/var/lib/tascora/tascora.db", DriverSQLite},
		{"relative path", "tascora.db", DriverSQLite},
		{"empty", "", DriverSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDriver(tt.url))
		})
	}
}

func TestDefaultSQLitePath(t *testing.T) {
	path := DefaultSQLitePath()
	assert.Equal(t, "tascora.db", filepath.Base(path))
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "tascora.db")

	require.NoError(t, EnsureDirectory(path))
	assert.DirExists(t, filepath.Join(dir, "nested", "deeper"))
}

func TestEnsureDirectory_NoParent(t *testing.T) {
	assert.NoError(t, EnsureDirectory("tascora.db"))
}
