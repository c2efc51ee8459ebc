package execution

import (
	"context"
	"fmt"
	"time"

	"exrun/internal/domain"
)

// Runner executes the cases of a single suite
type Runner struct{}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run calls the target once per case, in order. A failing case never stops
// the suite; only context cancellation does.
func (r *Runner) Run(ctx context.Context, target Target, suite domain.Suite) domain.SuiteResult {
	start := time.Now()
	result := domain.SuiteResult{
		Suite: suite,
		Cases: make([]domain.CaseResult, 0, len(suite.Cases)),
	}

	for i, tc := range suite.Cases {
		if err := ctx.Err(); err != nil {
			result.Error = err
			break
		}
		result.Cases = append(result.Cases, r.runCase(ctx, target, i, tc))
	}

	result.Duration = time.Since(start)
	return result
}

func (r *Runner) runCase(ctx context.Context, target Target, index int, tc domain.TestCase) domain.CaseResult {
	cr := domain.CaseResult{Index: index, Case: tc}

	actual, err := call(ctx, target, tc.Inputs)
	cr.Actual = actual
	if err != nil {
		cr.Error = err
		cr.Message = tc.Message
		if cr.Message == "" {
			cr.Message = err.Error()
		}
		return cr
	}

	cr.Passed = Equal(tc.Outputs, actual)
	if !cr.Passed {
		cr.Message = tc.Message
		if cr.Message == "" {
			cr.Message = Diff(tc.Outputs, actual)
		}
	}
	return cr
}

// call invokes the target and turns a panic into an error
func call(ctx context.Context, target Target, inputs []int64) (out []int64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s panicked: %v", target, rec)
		}
	}()
	// The target may modify its inputs; the fixture stays untouched
	args := append([]int64(nil), inputs...)
	return target.Call(ctx, args)
}
