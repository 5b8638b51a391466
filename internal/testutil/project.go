package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteProject creates a project directory containing package.json and, when
// configJSON is non-empty, the default switch configuration. Returns the
// project directory.
func WriteProject(t *testing.T, manifestJSON, configJSON string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, filepath.Join(dir, "package.json"), manifestJSON)
	if configJSON != "" {
		WriteFile(t, filepath.Join(dir, "npm-dependency-switcher.config.json"), configJSON)
	}
	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
