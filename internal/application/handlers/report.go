package handlers

import (
	"fmt"

	"github.com/ersonp/logitrust/internal/domain/services"
)

// DefaultReportDays is the report window used when none is given.
const DefaultReportDays = 30

// ReportHandler handles ops reports.
type ReportHandler struct {
	site *services.SiteService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(site *services.SiteService) *ReportHandler {
	return &ReportHandler{site: site}
}

func reportDays(days int) (int, error) {
	if days == 0 {
		return DefaultReportDays, nil
	}
	if days < 0 {
		return 0, fmt.Errorf("report window must be positive, got %d: %w", days, ErrInvalidInput)
	}
	return days, nil
}

// Generate builds the report over the last days days.
func (h *ReportHandler) Generate(days int) (*services.Report, error) {
	days, err := reportDays(days)
	if err != nil {
		return nil, err
	}
	return h.site.GenerateReport(days), nil
}

// ExportResult is a rendered CSV report.
type ExportResult struct {
	FileName string
	Content  string
}

// Export renders the report over the last days days as CSV.
func (h *ReportHandler) Export(days int) (*ExportResult, error) {
	days, err := reportDays(days)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: services.ReportFileName(days),
		Content:  h.site.ExportCSV(days),
	}, nil
}
