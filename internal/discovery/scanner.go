package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fixtureSuffixes are the file name endings recognised as fixtures
var fixtureSuffixes = []string{".json", ".yaml", ".yml", "-test.js", "-test.py"}

// IsFixture reports whether a file name looks like a fixture file
func IsFixture(name string) bool {
	for _, suffix := range fixtureSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Scanner scans for fixture files in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all fixture files under root. A root that is itself a
// fixture file is returned as the only result.
func (s *Scanner) Scan(root string) ([]string, error) {
	var fixtureFiles []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		if IsFixture(info.Name()) {
			return []string{root}, nil
		}
		return nil, fmt.Errorf("test path is not a directory or fixture file: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if IsFixture(d.Name()) {
			fixtureFiles = append(fixtureFiles, path)
		}

		return nil
	})

	return fixtureFiles, err
}
