package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

// reportListLimit caps every ranked list in a report.
const reportListLimit = 5

// FieldCount is the number of requests made against one field label.
type FieldCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Report is the ops summary over a trailing window.
type Report struct {
	WindowDays     int          `json:"window_days"`
	GeneratedAt    time.Time    `json:"generated_at"`
	Total          int          `json:"total"`
	Approved       int          `json:"approved"`
	Rejected       int          `json:"rejected"`
	Pending        int          `json:"pending"`
	Held           int          `json:"held"`
	TopFields      []FieldCount `json:"top_fields"`
	RiskyPlaces    []PlaceScore `json:"risky_places"`
	DisputedPlaces []PlaceScore `json:"disputed_places"`
}

// windowRequests returns requests created on or after now minus days.
func (s *SiteService) windowRequests(now time.Time, days int) []entities.EditRequest {
	start := now.AddDate(0, 0, -days)
	var out []entities.EditRequest
	for _, r := range s.data.Requests {
		if !r.CreatedAt.Before(start) {
			out = append(out, r)
		}
	}
	return out
}

// GenerateReport summarizes requests from the last windowDays days and
// ranks places by risk and by disputes.
func (s *SiteService) GenerateReport(windowDays int) *Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	requests := s.windowRequests(now, windowDays)
	report := &Report{
		WindowDays:  windowDays,
		GeneratedAt: now,
		Total:       len(requests),
	}

	var fields []FieldCount
	fieldIdx := make(map[string]int)
	for _, r := range requests {
		switch r.Status {
		case entities.RequestApproved:
			report.Approved++
		case entities.RequestRejected:
			report.Rejected++
		case entities.RequestPending:
			report.Pending++
		case entities.RequestHold:
			report.Held++
		}
		if i, ok := fieldIdx[r.FieldLabel]; ok {
			fields[i].Count++
		} else {
			fieldIdx[r.FieldLabel] = len(fields)
			fields = append(fields, FieldCount{Label: r.FieldLabel, Count: 1})
		}
	}
	slices.SortStableFunc(fields, func(a, b FieldCount) int { return b.Count - a.Count })
	report.TopFields = truncate(fields, reportListLimit)

	var disputed []PlaceScore
	for _, p := range s.data.Places {
		score := ComputeScore(now, p.ID, s.data.Reviews, s.data.Constraints, s.data.Requests)
		if score.RiskGrade == entities.RiskGradeD && len(report.RiskyPlaces) < reportListLimit {
			report.RiskyPlaces = append(report.RiskyPlaces, PlaceScore{Place: p, Score: score})
		}
		if score.TrustDetails.DisputedPenalty > 0 {
			disputed = append(disputed, PlaceScore{Place: p, Score: score})
		}
	}
	slices.SortStableFunc(disputed, func(a, b PlaceScore) int {
		return b.Score.TrustDetails.DisputedPenalty - a.Score.TrustDetails.DisputedPenalty
	})
	report.DisputedPlaces = truncate(disputed, reportListLimit)

	return report
}

func truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// ReportFileName is the download name of an exported report.
func ReportFileName(windowDays int) string {
	return fmt.Sprintf("logitrust_report_%ddays.csv", windowDays)
}

// ExportCSV renders the request and dispute tables of the last windowDays
// days. Cells are comma-joined without quoting.
func (s *SiteService) ExportCSV(windowDays int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	rows := [][]string{
		{"Report Type", "Ops Monthly Summary"},
		{"Generated At", entities.FormatTimestamp(now)},
		{"Period", fmt.Sprintf("%d days", windowDays)},
		{},
		{"--- Requests Summary ---"},
		{"ID", "Date", "Place", "Field", "Status", "Requested By", "Reviewer"},
	}
	for _, r := range s.windowRequests(now, windowDays) {
		reviewer := r.ReviewerID
		if reviewer == "" {
			reviewer = "-"
		}
		rows = append(rows, []string{
			r.ID,
			entities.FormatTimestamp(r.CreatedAt),
			r.PlaceID,
			r.FieldKey,
			string(r.Status),
			r.RequestedByName,
			reviewer,
		})
	}
	rows = append(rows,
		[]string{},
		[]string{"--- Disputed Places ---"},
		[]string{"Place Name", "Disputed Fields Count"},
	)
	for _, p := range s.data.Places {
		score := ComputeScore(now, p.ID, s.data.Reviews, s.data.Constraints, s.data.Requests)
		if n := score.TrustDetails.DisputedPenalty / disputedPenaltyUnit; n > 0 {
			rows = append(rows, []string{p.Name, strconv.Itoa(n)})
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	return strings.Join(lines, "\n")
}
