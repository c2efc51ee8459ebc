package discovery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"exrun/internal/domain"
	"exrun/internal/parser"
)

var (
	// ErrNoTarget is returned for a fixture that names no target
	ErrNoTarget = errors.New("fixture has no target")
	// ErrNoCases is returned for a fixture without any case
	ErrNoCases = errors.New("fixture has no cases")
	// ErrNotSuite is returned for a JSON or YAML file that has neither a
	// target nor cases, such as a package.json next to the fixtures
	ErrNotSuite = errors.New("not a suite file")
)

// Loader reads fixture files into suites
type Loader struct {
	legacy parser.Parser
}

// NewLoader creates a new Loader
func NewLoader(legacy parser.Parser) *Loader {
	return &Loader{legacy: legacy}
}

// Load decodes a fixture file based on its extension
func (l *Loader) Load(path string) (domain.Suite, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Suite{}, fmt.Errorf("error reading file %s: %w", path, err)
	}

	var suite domain.Suite
	ext := filepath.Ext(path)
	if (ext == ".json" || ext == ".yaml" || ext == ".yml") && !looksLikeSuite(ext, content) {
		return domain.Suite{}, fmt.Errorf("%s: %w", path, ErrNotSuite)
	}

	switch ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&suite); err != nil {
			return domain.Suite{}, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&suite); err != nil {
			return domain.Suite{}, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		suite, err = l.legacy.Parse(path, content)
		if err != nil {
			return domain.Suite{}, err
		}
	}

	suite.Source = path
	if suite.Name == "" {
		suite.Name = fixtureName(path, suite.Target)
	}
	if strings.TrimSpace(suite.Target) == "" {
		return domain.Suite{}, fmt.Errorf("%s: %w", path, ErrNoTarget)
	}
	if len(suite.Cases) == 0 {
		return domain.Suite{}, fmt.Errorf("%s: %w", path, ErrNoCases)
	}
	return suite, nil
}

// LoadAll loads every path in order, stopping at the first bad fixture.
// Files that are not suites at all are returned as skipped.
func (l *Loader) LoadAll(paths []string) ([]domain.Suite, []string, error) {
	suites := make([]domain.Suite, 0, len(paths))
	var skipped []string
	for _, p := range paths {
		suite, err := l.Load(p)
		if errors.Is(err, ErrNotSuite) {
			skipped = append(skipped, p)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		suites = append(suites, suite)
	}
	return suites, skipped, nil
}

// looksLikeSuite reports whether a JSON or YAML document is a mapping with
// a target or cases key. Syntax errors count as suites so the strict
// decoder reports them.
func looksLikeSuite(ext string, content []byte) bool {
	var fields map[string]any
	var err error
	if ext == ".json" {
		err = json.Unmarshal(content, &fields)
	} else {
		err = yaml.Unmarshal(content, &fields)
	}

	var jsonType *json.UnmarshalTypeError
	var yamlType *yaml.TypeError
	switch {
	case errors.As(err, &jsonType), errors.As(err, &yamlType):
		return false
	case err != nil:
		return true
	}

	_, hasTarget := fields["target"]
	_, hasCases := fields["cases"]
	return hasTarget || hasCases
}

// DescribeCases renders each case as "name(inputs) -> outputs"
func DescribeCases(suite domain.Suite) []string {
	out := make([]string, 0, len(suite.Cases))
	for _, c := range suite.Cases {
		out = append(out, fmt.Sprintf("%s(%s) -> %v", suite.DisplayName(), joinInts(c.Inputs), c.Outputs))
	}
	return out
}

func joinInts(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

// fixtureName derives a suite name from the target, falling back to the file name
func fixtureName(path, target string) string {
	if target != "" {
		return domain.TargetStem(target)
	}
	base := filepath.Base(path)
	for _, suffix := range fixtureSuffixes {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return base
}
