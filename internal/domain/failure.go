package domain

// TestFailure represents a failed case, or a suite that could not run
type TestFailure struct {
	Suite     string  `json:"suite"`
	Target    string  `json:"target"`
	Source    string  `json:"source,omitempty"`
	CaseIndex int     `json:"case_index"` // -1 when the whole suite failed
	Inputs    []int64 `json:"inputs,omitempty"`
	Expected  []int64 `json:"expected,omitempty"`
	Actual    []int64 `json:"actual,omitempty"`
	Message   string  `json:"message"`
	Error     string  `json:"error,omitempty"`
	Resolved  bool    `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// IsSuiteFailure reports whether the failure describes a suite that never ran
func (f TestFailure) IsSuiteFailure() bool {
	return f.CaseIndex < 0
}
