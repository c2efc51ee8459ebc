package discovery

import (
	"path/filepath"
	"strings"

	"exrun/internal/domain"
)

// Filter filters fixtures by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterSuites keeps suites whose name matches the pattern
func (f *Filter) FilterSuites(suites []domain.Suite, pattern string) []domain.Suite {
	if pattern == "" {
		return suites
	}

	var filtered []domain.Suite
	for _, s := range suites {
		if Match(s.DisplayName(), pattern) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// Match reports whether name matches a wildcard pattern. Patterns without
// wildcards match as substrings; "*a*b*" matches when every part occurs.
func Match(name, pattern string) bool {
	// Try to match using filepath.Match (supports * and ? wildcards)
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
