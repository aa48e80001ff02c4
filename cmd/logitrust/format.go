package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ersonp/logitrust/internal/application/handlers"
	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
	"github.com/ersonp/logitrust/internal/domain/services"
)

// dateLayout is how dates are shown in tables.
const dateLayout = "2006-01-02 15:04"

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPlaceScores(w io.Writer, places []services.PlaceScore) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tGRADE\tTRUST\tLABEL")
	for _, p := range places {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			p.Place.ID, p.Place.Name, p.Place.Type,
			p.Score.RiskGrade, p.Score.TrustDetails.TotalScore, p.Score.TrustDetails.Label)
	}
	return tw.Flush()
}

func formatScore(w io.Writer, score entities.Score) {
	d := score.TrustDetails
	fmt.Fprintf(w, "Risk grade: %s\n", score.RiskGrade)
	fmt.Fprintf(w, "Trust: %d (%s)\n", d.TotalScore, d.Label)
	fmt.Fprintf(w, "  confirmed ratio  +%d\n", d.ConfirmedRatioScore)
	fmt.Fprintf(w, "  recency bonus    +%d\n", d.RecencyBonus)
	fmt.Fprintf(w, "  pending penalty  -%d\n", d.PendingPenalty)
	fmt.Fprintf(w, "  disputed penalty -%d\n", d.DisputedPenalty)
}

func formatFields(w io.Writer, fields []ports.ConstraintView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tLABEL\tVALUE\tSTATUS")
	for _, f := range fields {
		value := f.Value + f.Unit
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.FieldKey, f.Label, value, f.Status)
	}
	return tw.Flush()
}

func formatPlaceDetail(w io.Writer, d *handlers.PlaceDetail) error {
	fmt.Fprintf(w, "%s (%s)\n", d.Place.Name, d.Place.ID)
	fmt.Fprintf(w, "%s | %s\n\n", d.Place.Address, d.Place.Type)
	formatScore(w, d.Score)

	fmt.Fprintln(w)
	if err := formatFields(w, d.Fields); err != nil {
		return err
	}

	if len(d.Announcements) > 0 {
		fmt.Fprintln(w, "\nAnnouncements:")
		for _, a := range d.Announcements {
			fmt.Fprintf(w, "  [%s] %s: %s\n", a.CreatedAt.Format(dateLayout), a.Title, a.Content)
		}
	}

	if len(d.Versions) > 0 {
		fmt.Fprintln(w, "\nHistory:")
		for _, v := range d.Versions {
			fmt.Fprintf(w, "  %s %s: %s -> %s (by %s)\n",
				v.CreatedAt.Format(dateLayout), v.Label, v.OldValue, v.NewValue, v.ApprovedBy)
		}
	}

	if len(d.Reviews) > 0 {
		fmt.Fprintln(w, "\nReviews:")
		for _, r := range d.Reviews {
			fmt.Fprintf(w, "  %s %s: %s", strings.Repeat("*", r.Rating), r.UserName, r.TipText)
			if len(r.Tags) > 0 {
				fmt.Fprintf(w, " #%s", strings.Join(r.Tags, " #"))
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func formatRequests(w io.Writer, requests []entities.EditRequest) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tPLACE\tFIELD\tCURRENT\tREQUESTED\tSTATUS\tBY")
	for _, r := range requests {
		current := r.CurrentValue
		if current == "" {
			current = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.CreatedAt.Format(dateLayout), r.PlaceID, r.FieldLabel,
			current, r.RequestedValue, r.Status, r.RequestedByName)
	}
	return tw.Flush()
}

func formatQueue(w io.Writer, queue []services.QueueItem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPLACE\tFIELD\tREQUESTED\tFIELD STATUS\tBY")
	for _, item := range queue {
		r := item.Request
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.PlaceID, r.FieldLabel, r.RequestedValue, item.FieldStatus, r.RequestedByName)
	}
	return tw.Flush()
}

func formatReport(w io.Writer, r *services.Report) {
	fmt.Fprintf(w, "Ops report: last %d days (generated %s)\n\n", r.WindowDays, entities.FormatTimestamp(r.GeneratedAt))
	fmt.Fprintf(w, "Requests: %d total, %d approved, %d rejected, %d pending, %d on hold\n",
		r.Total, r.Approved, r.Rejected, r.Pending, r.Held)

	fmt.Fprintln(w, "\nMost requested fields:")
	if len(r.TopFields) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, f := range r.TopFields {
		fmt.Fprintf(w, "  %d. %s (%d)\n", i+1, f.Label, f.Count)
	}

	fmt.Fprintln(w, "\nRiskiest places:")
	if len(r.RiskyPlaces) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, p := range r.RiskyPlaces {
		fmt.Fprintf(w, "  %d. %s trust %d (%s)\n", i+1, p.Place.Name, p.Score.TrustDetails.TotalScore, p.Score.RiskGrade)
	}

	fmt.Fprintln(w, "\nDisputed places:")
	if len(r.DisputedPlaces) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, p := range r.DisputedPlaces {
		fmt.Fprintf(w, "  %d. %s penalty %d\n", i+1, p.Place.Name, p.Score.TrustDetails.DisputedPenalty)
	}
}

func formatNotifications(w io.Writer, list *handlers.NotificationList) {
	fmt.Fprintf(w, "%d unread\n", list.Unread)
	for _, n := range list.Notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s [%s] %s (%s)\n", marker, n.ID, n.CreatedAt.Format(dateLayout), n.Message, n.Link)
	}
}

func formatBriefing(w io.Writer, b *ports.Briefing) {
	fmt.Fprintln(w, b.Summary)
	fmt.Fprintln(w, "\nEntry cautions:")
	for _, c := range b.EntryCautions {
		fmt.Fprintf(w, "  - %s\n", c)
	}
	fmt.Fprintf(w, "\nLoading position: %s\n", b.LoadingPosition)
	fmt.Fprintln(w, "\nWait time risks:")
	for _, r := range b.WaitTimeRisks {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}
