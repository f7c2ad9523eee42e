// Package testutil provides fixture helpers for parser and command tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ConfigDir is a temporary directory holding ssh config fixtures.
type ConfigDir struct {
	T    *testing.T
	Root string
}

// NewConfigDir creates an empty fixture directory, removed when the test
// finishes.
func NewConfigDir(t *testing.T) *ConfigDir {
	t.Helper()
	return &ConfigDir{T: t, Root: t.TempDir()}
}

// Write writes a config file under the fixture root and returns its full
// path. Parent directories are created as needed, so names like
// "conf.d/extra.conf" work.
func (d *ConfigDir) Write(name, content string) string {
	d.T.Helper()

	path := filepath.Join(d.Root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		d.T.Fatalf("Failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		d.T.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteConfig writes a standalone config file into its own temporary
// directory and returns its path.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return NewConfigDir(t).Write("config", content)
}
