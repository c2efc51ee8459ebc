package execution

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"exrun/internal/config"
	"exrun/internal/domain"
)

var _ Executor = (*WorkerPool)(nil)

// errStopped cancels the remaining workers after a fail-fast failure
var errStopped = errors.New("stopped after first failing suite")

// WorkerPool runs suites across workers. Cases inside a suite always run
// sequentially on one worker.
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	resolver  *Resolver
	scheduler Scheduler
	progress  Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, resolver *Resolver, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		resolver:  resolver,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute runs every suite (no fail-fast).
func (wp *WorkerPool) Execute(ctx context.Context, suites []domain.Suite) ([]domain.SuiteResult, time.Duration, error) {
	return wp.ExecuteWithOptions(ctx, suites, false)
}

// ExecuteWithOptions runs suites, optionally stopping after the first failing
// suite. Suites already running finish; the rest are skipped. Results keep
// the order of the input.
func (wp *WorkerPool) ExecuteWithOptions(ctx context.Context, suites []domain.Suite, failFast bool) ([]domain.SuiteResult, time.Duration, error) {
	if len(suites) == 0 {
		return nil, 0, nil
	}

	startTime := time.Now()
	results := make([]domain.SuiteResult, len(suites))
	done := make([]bool, len(suites))

	var mu sync.Mutex
	var completed, passedCases, failedCases int

	g, gctx := errgroup.WithContext(ctx)
	for _, bucket := range wp.scheduler.Schedule(len(suites), wp.config.Processors) {
		bucket := bucket
		g.Go(func() error {
			for _, idx := range bucket {
				if gctx.Err() != nil {
					return nil
				}
				result := wp.runSuite(ctx, suites[idx])

				mu.Lock()
				results[idx] = result
				done[idx] = true
				completed++
				p, f := result.Counts()
				passedCases += p
				failedCases += f
				if wp.progress != nil {
					wp.progress.Update(completed, passedCases, failedCases)
				}
				mu.Unlock()

				if failFast && !result.Success() {
					return errStopped
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if errors.Is(err, errStopped) {
		err = nil
	}
	if err == nil {
		err = ctx.Err()
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}

	allResults := make([]domain.SuiteResult, 0, len(suites))
	for i, ok := range done {
		if ok {
			allResults = append(allResults, results[i])
		}
	}
	return allResults, time.Since(startTime), err
}

// runSuite resolves the suite's target and runs its cases. An unresolvable
// target fails the suite before any case runs.
func (wp *WorkerPool) runSuite(ctx context.Context, suite domain.Suite) domain.SuiteResult {
	target, err := wp.resolver.Resolve(suite.Target)
	if err != nil {
		return domain.SuiteResult{Suite: suite, Error: err}
	}
	return wp.runner.Run(ctx, target, suite)
}
