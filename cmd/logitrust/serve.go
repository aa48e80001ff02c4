package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/infrastructure/httpapi"
	"github.com/ersonp/logitrust/internal/infrastructure/metrics"
	"github.com/ersonp/logitrust/internal/infrastructure/scheduler"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Serves the JSON API, Prometheus metrics at /metrics and the scheduled report export.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.addr from config)")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()
	recorder := metrics.NewRecorder()

	return withInternalDeps(ctx, recorder, func(d *internalDeps) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLevel(d.Config.Logging.Level),
		}))

		recorder.TrackPending(func() int {
			return len(d.site.Requests(entities.RequestPending))
		})

		sched := scheduler.NewScheduler(d.site, d.Config.Report, logger)
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()

		router := httpapi.NewRouter(httpapi.Deps{
			Places:        d.Places,
			Requests:      d.Requests,
			Reports:       d.Reports,
			Notifications: d.Notifications,
			Search:        d.Search,
			Brief:         d.Brief,
			Metrics:       recorder.Handler(),
			Logger:        logger,
		})

		if addr == "" {
			addr = d.Config.Server.Addr
		}
		return httpapi.Serve(ctx, addr, router, logger)
	})
}

// parseLevel maps a config level name to a slog level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
