package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"exrun/internal/cli"
	"exrun/internal/cli/commands"
	"exrun/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "exrun",
		Short:         "Exercise test runner",
		Long:          `Runs numeric exercises against fixture suites of input/output cases and reports every mismatch.`,
		Version:       version,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
