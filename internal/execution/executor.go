package execution

import (
	"context"
	"time"

	"exrun/internal/domain"
)

// Executor runs suites and returns their results in input order
type Executor interface {
	Execute(ctx context.Context, suites []domain.Suite) ([]domain.SuiteResult, time.Duration, error)
}

// Progress receives updates as suites complete
type Progress interface {
	Update(completed, passedCases, failedCases int)
	Finish()
}
