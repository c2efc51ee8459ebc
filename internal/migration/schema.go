package migration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"exrun/internal/domain"
)

// schemaStep is one idempotent schema statement
type schemaStep struct {
	name string
	sql  string
}

var schema = []schemaStep{
	{
		name: "create runs",
		sql: `CREATE TABLE IF NOT EXISTS runs (
	id               CHAR(36)     NOT NULL PRIMARY KEY,
	started_at       DATETIME     NOT NULL,
	total_suites     INT          NOT NULL,
	failed_suites    INT          NOT NULL,
	total_cases      INT          NOT NULL,
	failed_cases     INT          NOT NULL,
	duration_seconds DOUBLE       NOT NULL,
	workers          INT          NOT NULL
)`,
	},
	{
		name: "create case_failures",
		sql: `CREATE TABLE IF NOT EXISTS case_failures (
	id         BIGINT        NOT NULL AUTO_INCREMENT PRIMARY KEY,
	run_id     CHAR(36)      NOT NULL,
	suite      VARCHAR(255)  NOT NULL,
	target     VARCHAR(1024) NOT NULL,
	source     VARCHAR(1024) NOT NULL DEFAULT '',
	case_index INT           NOT NULL,
	inputs     TEXT          NOT NULL,
	expected   TEXT          NOT NULL,
	actual     TEXT          NOT NULL,
	message    TEXT          NOT NULL,
	error      TEXT          NOT NULL,
	INDEX idx_case_failures_run (run_id),
	CONSTRAINT fk_case_failures_run FOREIGN KEY (run_id) REFERENCES runs (id) ON DELETE CASCADE
)`,
	},
}

var _ Migrator = (*SchemaMigrator)(nil)

// SchemaMigrator creates the history database and its tables
type SchemaMigrator struct {
	databaseManager *DatabaseManager
}

// NewSchemaMigrator creates a new SchemaMigrator
func NewSchemaMigrator(dbManager *DatabaseManager) *SchemaMigrator {
	return &SchemaMigrator{databaseManager: dbManager}
}

// Run creates the database if needed and applies every schema statement
func (sm *SchemaMigrator) Run(ctx context.Context) error {
	color.Cyan("\n╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║               Preparing Run History Database               ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝\n")

	created, err := sm.databaseManager.CheckAndCreateDatabase(ctx)
	if err != nil {
		return fmt.Errorf("failed to check database: %w", err)
	}
	dbName := sm.databaseManager.config.GetDatabaseName()
	if created {
		color.White("Created database %s\n", dbName)
	}

	db, err := sm.databaseManager.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	bar := progressbar.NewOptions(len(schema),
		progressbar.OptionSetDescription(color.CyanString("Migrating: ")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	startTime := time.Now()
	var failed []domain.MigrationResult
	for _, step := range schema {
		_, err := db.ExecContext(ctx, step.sql)
		if err != nil {
			failed = append(failed, domain.MigrationResult{Name: step.name, Error: err})
		}
		bar.Add(1)
	}
	bar.Finish()

	fmt.Print("\n")
	if len(failed) > 0 {
		color.Red("✗ %d schema step(s) failed\n", len(failed))
		for _, result := range failed {
			color.Red("  %s (DB: %s): %v\n", result.Name, dbName, result.Error)
		}
		return fmt.Errorf("migration failed for %d step(s)", len(failed))
	}

	color.Green("✓ History schema ready in %s\n", dbName)
	color.White("Duration: %s\n", time.Since(startTime).Round(time.Millisecond))
	return nil
}
