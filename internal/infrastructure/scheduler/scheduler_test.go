package scheduler

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/infrastructure/config"
)

type stubExporter struct {
	csv  string
	days []int
}

func (e *stubExporter) ExportCSV(windowDays int) string {
	e.days = append(e.days, windowDays)
	return e.csv
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunNow(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	exporter := &stubExporter{csv: "Report Type,Ops Monthly Summary\n"}
	s := NewScheduler(exporter, config.ReportConfig{WindowDays: 7, OutputDir: dir}, discardLogger())

	path, err := s.RunNow()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "logitrust_report_7days.csv"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Report Type,Ops Monthly Summary\n", string(data))
	assert.Equal(t, []int{7}, exporter.days)
}

func TestScheduler_RunNow_DefaultWindow(t *testing.T) {
	exporter := &stubExporter{}
	s := NewScheduler(exporter, config.ReportConfig{OutputDir: t.TempDir()}, discardLogger())

	path, err := s.RunNow()

	require.NoError(t, err)
	assert.Equal(t, "logitrust_report_30days.csv", filepath.Base(path))
	assert.Equal(t, []int{config.DefaultReportWindowDays}, exporter.days)
}

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		wantErr  bool
		running  bool
	}{
		{name: "disabled", schedule: ""},
		{name: "valid schedule", schedule: "0 6 * * *", running: true},
		{name: "descriptor", schedule: "@daily", running: true},
		{name: "invalid schedule", schedule: "not a cron spec", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(&stubExporter{}, config.ReportConfig{Schedule: tt.schedule, OutputDir: t.TempDir()}, discardLogger())

			err := s.Start()
			defer s.Stop()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "parsing report schedule")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.running, s.isRunning)
			assert.Len(t, s.cron.Entries(), map[bool]int{true: 1, false: 0}[tt.running])
		})
	}
}

func TestScheduler_StopIdempotent(t *testing.T) {
	s := NewScheduler(&stubExporter{}, config.ReportConfig{Schedule: "@hourly"}, nil)
	require.NoError(t, s.Start())

	s.Stop()
	s.Stop()

	assert.False(t, s.isRunning)
}
