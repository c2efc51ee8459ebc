package commands

import (
	"github.com/fatih/color"

	"exrun/internal/config"
	"exrun/internal/discovery"
	"exrun/internal/domain"
	"exrun/internal/fixtures"
)

// SuiteSource finds and loads the suites a command works on
type SuiteSource struct {
	config  *config.Config
	scanner *discovery.Scanner
	loader  *discovery.Loader
	filter  *discovery.Filter
}

// NewSuiteSource creates a new SuiteSource
func NewSuiteSource(cfg *config.Config, scanner *discovery.Scanner, loader *discovery.Loader, filter *discovery.Filter) *SuiteSource {
	return &SuiteSource{
		config:  cfg,
		scanner: scanner,
		loader:  loader,
		filter:  filter,
	}
}

// Load returns the embedded suites when no test path is configured,
// otherwise every fixture found under the test path. The name filter
// applies to both.
func (s *SuiteSource) Load() ([]domain.Suite, error) {
	var suites []domain.Suite

	testPath := s.config.GetTestPath()
	if testPath == "" {
		embedded, err := fixtures.Suites()
		if err != nil {
			return nil, err
		}
		suites = embedded
	} else {
		paths, err := s.scanner.Scan(testPath)
		if err != nil {
			return nil, err
		}
		loaded, skipped, err := s.loader.LoadAll(paths)
		if err != nil {
			return nil, err
		}
		for _, p := range skipped {
			color.Yellow("Skipping %s: no target or cases", p)
		}
		suites = loaded
	}

	return s.filter.FilterSuites(suites, s.config.Flags.NameFilter), nil
}

// failedSuiteNames returns the suites with unresolved failures in a stored run
func failedSuiteNames(output *domain.TestResultsOutput) map[string]struct{} {
	names := make(map[string]struct{})
	if output == nil {
		return names
	}
	for _, f := range output.Details {
		if !f.Resolved {
			names[f.Suite] = struct{}{}
		}
	}
	return names
}
