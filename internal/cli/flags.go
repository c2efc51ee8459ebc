package cli

import (
	"time"

	"exrun/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Processors int
	TestPath   string
	NameFilter string
	TestCases  bool
	FailFast   bool
	OnlyFailed bool
	History    bool
	TargetDir  string
	Timeout    time.Duration
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors: f.Processors,
		TestPath:   f.TestPath,
		NameFilter: f.NameFilter,
		TestCases:  f.TestCases,
		FailFast:   f.FailFast,
		OnlyFailed: f.OnlyFailed,
		History:    f.History,
		TargetDir:  f.TargetDir,
		Timeout:    f.Timeout,
	}
}
