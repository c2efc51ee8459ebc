package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	// Create fixture files
	files := []string{
		"basics/factorial.yaml",
		"basics/fibonacci.json",
		"legacy/0-N-test.js",
		"legacy/N-0-test.py",
		"legacy/helpers.js",
		"node_modules/pkg/package.json",
		".hidden/squared.yaml",
		"README.md",
	}
	for _, file := range files {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"node_modules"})

	t.Run("scans fixture files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Should find 4 fixtures, not the ones in node_modules or hidden dirs
		if len(results) != 4 {
			t.Errorf("expected 4 fixture files, got %d: %v", len(results), results)
		}
	})

	t.Run("single fixture file", func(t *testing.T) {
		results, err := scanner.Scan(filepath.Join(tmpDir, "basics", "factorial.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("expected 1 result, got %d", len(results))
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for non fixture file", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "README.md"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}
