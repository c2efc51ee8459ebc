package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"exrun/internal/config"
	"exrun/internal/migration"
)

// errNoDatabase is returned when history commands run without DB settings
var errNoDatabase = errors.New("no history database configured (set EXRUN_DB_DSN or DB_HOST)")

// MigrateCommand handles the migrate command
type MigrateCommand struct {
	config   *config.Config
	migrator migration.Migrator
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(cfg *config.Config, migrator migration.Migrator) *MigrateCommand {
	return &MigrateCommand{
		config:   cfg,
		migrator: migrator,
	}
}

// Execute runs the command
func (mc *MigrateCommand) Execute(cmd *cobra.Command, args []string) error {
	if !mc.config.Database.Enabled() {
		return errNoDatabase
	}
	return mc.migrator.Run(cmd.Context())
}
