package domain

import "time"

// CaseResult is the outcome of running one TestCase
type CaseResult struct {
	Index   int      // Position of the case within its suite
	Case    TestCase // The case that was run
	Actual  []int64  // What the target returned
	Passed  bool     // Actual matched Case.Outputs exactly
	Message string   // Fixture message, or a generated diff when the fixture has none
	Error   error    // Target error or panic, if any
}

// SuiteResult is the outcome of running every case of a suite
type SuiteResult struct {
	Suite    Suite
	Cases    []CaseResult
	Duration time.Duration
	Error    error // Fatal error: the suite could not run (e.g. unknown target)
}

// Success reports whether the suite ran and every case passed
func (r SuiteResult) Success() bool {
	if r.Error != nil {
		return false
	}
	for _, c := range r.Cases {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Counts returns the number of passed and failed cases
func (r SuiteResult) Counts() (passed, failed int) {
	for _, c := range r.Cases {
		if c.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// TestResultsMeta contains metadata about a run
type TestResultsMeta struct {
	RunID           string  `json:"run_id"`
	TotalSuites     int     `json:"total_suites"`
	FailedSuites    int     `json:"failed_suites"`
	PassedSuites    int     `json:"passed_suites"`
	TotalCases      int     `json:"total_cases"`
	FailedCases     int     `json:"failed_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// TestResultsOutput is the complete output structure for a run
type TestResultsOutput struct {
	Meta    TestResultsMeta `json:"meta"`
	Details []TestFailure   `json:"details"`
}
