package execution

import "exrun/internal/domain"

// CollectFailures flattens failed cases and fatal suites into failure records
func CollectFailures(results []domain.SuiteResult) []domain.TestFailure {
	var failures []domain.TestFailure
	for _, r := range results {
		base := domain.TestFailure{
			Suite:  r.Suite.DisplayName(),
			Target: r.Suite.Target,
			Source: r.Suite.Source,
		}

		if r.Error != nil {
			f := base
			f.CaseIndex = -1
			f.Message = r.Error.Error()
			f.Error = r.Error.Error()
			failures = append(failures, f)
		}

		for _, c := range r.Cases {
			if c.Passed {
				continue
			}
			f := base
			f.CaseIndex = c.Index
			f.Inputs = c.Case.Inputs
			f.Expected = c.Case.Outputs
			f.Actual = c.Actual
			f.Message = c.Message
			if c.Error != nil {
				f.Error = c.Error.Error()
			}
			failures = append(failures, f)
		}
	}
	return failures
}
