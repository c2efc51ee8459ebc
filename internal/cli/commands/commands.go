package commands

import (
	"github.com/spf13/cobra"

	"exrun/internal/cli"
	"exrun/internal/config"
	"exrun/internal/discovery"
	"exrun/internal/execution"
	"exrun/internal/migration"
	"exrun/internal/parser"
	"exrun/internal/storage"
	"exrun/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Migrate *MigrateCommand
	Fails   *FailsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	loader := discovery.NewLoader(parser.NewLegacyParser())
	source := NewSuiteSource(cfg, scanner, loader, filter)
	runner := execution.NewRunner()
	resolver := execution.NewResolver(cfg)
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewWorkerPool(cfg, runner, resolver, scheduler)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	dbManager := migration.NewDatabaseManager(cfg)
	migrator := migration.NewSchemaMigrator(dbManager)
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:     NewRunCommand(cfg, source, executor, jsonStorage, formatter, dbManager),
		List:    NewListCommand(cfg, source, formatter, jsonStorage),
		Migrate: NewMigrateCommand(cfg, migrator),
		Fails:   NewFailsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Rebuild the shared config in place so every dependency sees .env,
	// environment and flags
	applyFlags := func(cmd *cobra.Command, args []string) error {
		*cfg = *config.Load(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:          "run",
		Short:        "Run exercise test suites",
		Long:         "Load test suites and check every case against its target, suites spread over workers",
		RunE:         c.Run.Execute,
		PreRunE:      applyFlags,
		SilenceUsage: true,
	}
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of suites to run at once (default 1, or EXRUN_PROCESSORS)")
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Fixture file or folder to load suites from (default: built-in suites)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter suites by name pattern (supports wildcards, e.g. 'fib*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop after the first failing suite")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only suites that failed in the last run (from storage/test-results.json)")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run in the MySQL history database")
	runCmd.Flags().StringVar(&flags.TargetDir, "target-dir", "", "Folder with executables that replace the built-in exercises")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-case timeout for executable targets (default 10s)")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List test suites",
		Long:    "Load and list all test suites without running them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter suites by name pattern (supports wildcards, e.g. 'fib*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Fixture file or folder to load suites from (default: built-in suites)")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List every case of each suite")
	rootCmd.AddCommand(listCmd)

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Create the run history database",
		Long:         "Create the MySQL history database and its tables if they do not exist",
		RunE:         c.Migrate.Execute,
		PreRunE:      applyFlags,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(migrateCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:     "fails",
		Short:   "View case failures interactively",
		Long:    "Display case failures from the last run in an interactive viewer",
		RunE:    c.Fails.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failsCmd)
}
