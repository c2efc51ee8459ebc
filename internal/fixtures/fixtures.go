// Package fixtures embeds the built-in exercise suites.
package fixtures

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"exrun/internal/domain"
)

// SourcePrefix marks suites that came from the embedded set
const SourcePrefix = "builtin:"

//go:embed suites/*.yaml
var suitesFS embed.FS

// Suites decodes every embedded suite, ordered by file name
func Suites() ([]domain.Suite, error) {
	entries, err := fs.ReadDir(suitesFS, "suites")
	if err != nil {
		return nil, fmt.Errorf("read embedded suites: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	suites := make([]domain.Suite, 0, len(names))
	for _, name := range names {
		data, err := suitesFS.ReadFile(path.Join("suites", name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var suite domain.Suite
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&suite); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if suite.Name == "" {
			suite.Name = strings.TrimSuffix(name, path.Ext(name))
		}
		suite.Source = SourcePrefix + name
		suites = append(suites, suite)
	}
	return suites, nil
}
