// Package scheduler runs the periodic report export.
package scheduler

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ersonp/logitrust/internal/domain/services"
	"github.com/ersonp/logitrust/internal/infrastructure/config"
)

// ReportExporter renders the review report as CSV.
type ReportExporter interface {
	ExportCSV(windowDays int) string
}

// Scheduler writes the review report CSV on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	exporter ReportExporter
	config   config.ReportConfig
	logger   *slog.Logger

	mu        sync.Mutex
	isRunning bool
}

// NewScheduler creates a new scheduler.
func NewScheduler(exporter ReportExporter, cfg config.ReportConfig, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:     cron.New(),
		exporter: exporter,
		config:   cfg,
		logger:   logger,
	}
}

// Start registers the export job and starts the cron runner. An empty
// schedule disables it.
func (s *Scheduler) Start() error {
	if s.config.Schedule == "" {
		s.logger.Info("scheduler: report export is disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		path, err := s.RunNow()
		if err != nil {
			s.logger.Error("scheduler: report export failed", "error", err)
			return
		}
		s.logger.Info("scheduler: report exported", "path", path)
	})
	if err != nil {
		return fmt.Errorf("parsing report schedule %q: %w", s.config.Schedule, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scheduler: started", "schedule", s.config.Schedule, "window_days", s.config.WindowDays)
	return nil
}

// Stop stops the cron runner and waits for a running export to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("scheduler: stopped")
}

// RunNow writes the report immediately and returns the file path.
func (s *Scheduler) RunNow() (string, error) {
	days := s.config.WindowDays
	if days <= 0 {
		days = config.DefaultReportWindowDays
	}

	if err := os.MkdirAll(s.config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path := filepath.Join(s.config.OutputDir, services.ReportFileName(days))
	if err := os.WriteFile(path, []byte(s.exporter.ExportCSV(days)), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
