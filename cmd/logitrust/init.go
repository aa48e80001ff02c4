package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/logitrust/internal/application/handlers"
	"github.com/ersonp/logitrust/internal/domain/ports"
	"github.com/ersonp/logitrust/internal/infrastructure/config"
	"github.com/ersonp/logitrust/internal/infrastructure/relationaldb/sqlite"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new logitrust workspace",
		Long:  "Creates a .logitrust directory with default configuration and a SQLite database seeded with demo sites.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reseed demo data in an existing workspace")

	return cmd
}

func openSQLiteStore(cfg *config.Config) (ports.Store, error) {
	return sqlite.NewRepository(cfg.SQLite)
}

func runInit(cmd *cobra.Command, force bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler(openSQLiteStore, nil).Handle(cmd.Context(), cwd, force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config: %s\n", result.ConfigPath)
	fmt.Fprintf(out, "Database: %s\n", result.DatabasePath)
	fmt.Fprintf(out, "Seeded %d places and %d edit requests.\n", result.Places, result.Requests)
	fmt.Fprintln(out, "\nNext: logitrust login <driver|dispatch|ops>")
	return nil
}
