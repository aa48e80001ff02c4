// Package main provides the entry point for the logitrust CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	globalJSON bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "logitrust",
		Short:         "Trust scoring and change review for logistics sites",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globalJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newInitCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newPlacesCmd(),
		newStatusCmd(),
		newScoreCmd(),
		newRequestCmd(),
		newReviewCmd(),
		newAnnounceCmd(),
		newNotificationsCmd(),
		newReportCmd(),
		newExportCmd(),
		newWatchlistCmd(),
		newIndexCmd(),
		newSearchCmd(),
		newBriefCmd(),
		newServeCmd(),
	)

	return rootCmd
}
