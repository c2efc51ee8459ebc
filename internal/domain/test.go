package domain

import (
	"path/filepath"
	"strings"
)

// TestCase is one literal input/output pair checked against a target
type TestCase struct {
	Inputs  []int64 `json:"inputs" yaml:"inputs"`
	Outputs []int64 `json:"outputs" yaml:"outputs"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"` // Shown verbatim on mismatch
}

// Suite is an ordered list of cases bound to a single target
type Suite struct {
	Name   string     `json:"name,omitempty" yaml:"name,omitempty"`
	Target string     `json:"target" yaml:"target"` // Location of the target function
	Source string     `json:"-" yaml:"-"`           // File the suite was loaded from
	Cases  []TestCase `json:"cases" yaml:"cases"`
}

// DisplayName returns the suite name, falling back to the target stem
func (s Suite) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return TargetStem(s.Target)
}

// TargetStem strips directories and extension from a target location,
// e.g. "/home/codio/workspace/times-table.js" becomes "times-table".
func TargetStem(location string) string {
	base := filepath.Base(filepath.ToSlash(location))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
