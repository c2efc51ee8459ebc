package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"exrun/internal/config"
	"exrun/internal/domain"
	"exrun/internal/execution"
	"exrun/internal/migration"
	"exrun/internal/storage"
	"exrun/internal/ui"
)

// ErrTestsFailed makes the process exit non-zero after a run with failures
var ErrTestsFailed = errors.New("test run failed")

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	source    *SuiteSource
	executor  *execution.WorkerPool
	storage   storage.Storage
	formatter *ui.Formatter
	dbManager *migration.DatabaseManager
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	source *SuiteSource,
	executor *execution.WorkerPool,
	st storage.Storage,
	formatter *ui.Formatter,
	dbManager *migration.DatabaseManager,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		source:    source,
		executor:  executor,
		storage:   st,
		formatter: formatter,
		dbManager: dbManager,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	suites, err := rc.source.Load()
	if err != nil {
		return err
	}

	if rc.config.Flags.OnlyFailed {
		suites, err = rc.onlyFailed(suites)
		if err != nil {
			return err
		}
	}

	if len(suites) == 0 {
		color.Yellow("No suites to execute")
		return nil
	}

	if ui.IsTerminal(os.Stderr) {
		rc.executor.SetProgress(ui.NewProgressBar(len(suites)))
	}

	results, duration, runErr := rc.executor.ExecuteWithOptions(ctx, suites, rc.config.Flags.FailFast)

	rc.formatter.PrintSuiteReport(results)

	failures := execution.CollectFailures(results)
	output, err := rc.storage.Save(uuid.NewString(), results, failures, duration, rc.config.Processors)
	if err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	if rc.config.Flags.History {
		if err := rc.recordHistory(ctx, output); err != nil {
			return err
		}
	}

	rc.formatter.PrintMetaStats(output)

	if runErr != nil {
		return runErr
	}
	if output.Meta.FailedSuites > 0 {
		return ErrTestsFailed
	}
	return nil
}

// onlyFailed keeps the suites with unresolved failures in the last stored run
func (rc *RunCommand) onlyFailed(suites []domain.Suite) ([]domain.Suite, error) {
	last, err := rc.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("--failed needs a previous run: %w", err)
	}
	return keepSuites(suites, failedSuiteNames(last)), nil
}

func (rc *RunCommand) recordHistory(ctx context.Context, output *domain.TestResultsOutput) error {
	if !rc.config.Database.Enabled() {
		return errNoDatabase
	}
	db, err := rc.dbManager.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := storage.NewMySQLHistory(db).Record(ctx, output); err != nil {
		return fmt.Errorf("failed to record run history: %w", err)
	}
	return nil
}

func keepSuites(suites []domain.Suite, names map[string]struct{}) []domain.Suite {
	var kept []domain.Suite
	for _, s := range suites {
		if _, ok := names[s.DisplayName()]; ok {
			kept = append(kept, s)
		}
	}
	return kept
}
