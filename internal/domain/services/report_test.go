package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

func reportSnapshot() *entities.Snapshot {
	r1 := testRequest("r1", "p1", "height", "4.2", entities.RequestApproved, daysAgo(2))
	r1.ReviewerID = "ops1"
	r2 := testRequest("r2", "p1", "dock", "2개", entities.RequestRejected, daysAgo(5))
	r2.ReviewerID = "ops1"
	r4 := testRequest("r4", "p1", "wait", "도로변", entities.RequestHold, daysAgo(40))
	r4.ReviewerID = "ops1"

	return &entities.Snapshot{
		Places: []entities.Place{
			testPlace("p1", "Alpha Hub"),
			testPlace("p2", "Beta Yard"),
			testPlace("p3", "Gamma Port"),
		},
		Requests: []entities.EditRequest{
			testRequest("r5", "p2", "dock", "3개", entities.RequestPending, testNow.Add(-time.Hour)),
			testRequest("r6", "p2", "dock", "4개", entities.RequestPending, testNow.Add(-2*time.Hour)),
			testRequest("r3", "p1", "height", "4.5", entities.RequestPending, daysAgo(1)),
			r1,
			r2,
			r4,
		},
		Reviews: reviewsWith("p3", 2, 3),
	}
}

func TestSiteService_GenerateReport(t *testing.T) {
	site, _, _ := newTestSite(t, reportSnapshot())

	report := site.GenerateReport(30)

	assert.Equal(t, 30, report.WindowDays)
	assert.Equal(t, testNow, report.GeneratedAt)
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 1, report.Approved)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 3, report.Pending)
	assert.Equal(t, 0, report.Held)
	assert.Equal(t, []FieldCount{{Label: "dock", Count: 3}, {Label: "height", Count: 2}}, report.TopFields)

	require.Len(t, report.RiskyPlaces, 1)
	assert.Equal(t, "p3", report.RiskyPlaces[0].Place.ID)

	require.Len(t, report.DisputedPlaces, 1)
	assert.Equal(t, "p2", report.DisputedPlaces[0].Place.ID)
	assert.Equal(t, 15, report.DisputedPlaces[0].Score.TrustDetails.DisputedPenalty)
}

func TestSiteService_GenerateReport_WiderWindow(t *testing.T) {
	site, _, _ := newTestSite(t, reportSnapshot())

	report := site.GenerateReport(60)

	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 1, report.Held)
}

func TestSiteService_GenerateReport_WindowEdgeIsInclusive(t *testing.T) {
	site, _, _ := newTestSite(t, &entities.Snapshot{
		Requests: []entities.EditRequest{
			testRequest("edge", "p1", "dock", "3개", entities.RequestRejected, daysAgo(7)),
			testRequest("out", "p1", "dock", "3개", entities.RequestRejected, daysAgo(7).Add(-time.Second)),
		},
	})

	assert.Equal(t, 1, site.GenerateReport(7).Total)
}

func TestSiteService_GenerateReport_TopFieldsRanking(t *testing.T) {
	var requests []entities.EditRequest
	for i, label := range []string{"a", "b", "c", "d", "e", "f", "g", "g"} {
		r := testRequest(fmt.Sprintf("r%d", i), "p1", label, "v", entities.RequestRejected, daysAgo(1))
		requests = append(requests, r)
	}
	site, _, _ := newTestSite(t, &entities.Snapshot{Requests: requests})

	report := site.GenerateReport(30)

	require.Len(t, report.TopFields, 5)
	assert.Equal(t, FieldCount{Label: "g", Count: 2}, report.TopFields[0])
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{
		report.TopFields[1].Label, report.TopFields[2].Label, report.TopFields[3].Label, report.TopFields[4].Label,
	})
}

func TestSiteService_GenerateReport_RankedListsAreCapped(t *testing.T) {
	snap := &entities.Snapshot{}
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("p%d", i)
		snap.Places = append(snap.Places, testPlace(id, "Site "+id))
		snap.Reviews = append(snap.Reviews, reviewsWith(id, 1)...)
		disputes := 1
		if i >= 5 {
			disputes = 2
		}
		for d := 0; d < disputes; d++ {
			key := fmt.Sprintf("k%d", d)
			snap.Requests = append(snap.Requests,
				testRequest(id+key+"a", id, key, "x", entities.RequestPending, daysAgo(1)),
				testRequest(id+key+"b", id, key, "y", entities.RequestPending, daysAgo(1)),
			)
		}
	}
	site, _, _ := newTestSite(t, snap)

	report := site.GenerateReport(30)

	require.Len(t, report.RiskyPlaces, 5)
	assert.Equal(t, "p0", report.RiskyPlaces[0].Place.ID)
	assert.Equal(t, "p4", report.RiskyPlaces[4].Place.ID)

	require.Len(t, report.DisputedPlaces, 5)
	assert.Equal(t, "p5", report.DisputedPlaces[0].Place.ID)
	assert.Equal(t, "p6", report.DisputedPlaces[1].Place.ID)
	assert.Equal(t, "p0", report.DisputedPlaces[2].Place.ID)
}

func TestSiteService_ExportCSV(t *testing.T) {
	site, _, _ := newTestSite(t, reportSnapshot())

	expected := "Report Type,Ops Monthly Summary\n" +
		"Generated At,2024-03-15T12:00:00.000Z\n" +
		"Period,30 days\n" +
		"\n" +
		"--- Requests Summary ---\n" +
		"ID,Date,Place,Field,Status,Requested By,Reviewer\n" +
		"r5,2024-03-15T11:00:00.000Z,p2,dock,PENDING,김기사,-\n" +
		"r6,2024-03-15T10:00:00.000Z,p2,dock,PENDING,김기사,-\n" +
		"r3,2024-03-14T12:00:00.000Z,p1,height,PENDING,김기사,-\n" +
		"r1,2024-03-13T12:00:00.000Z,p1,height,APPROVED,김기사,ops1\n" +
		"r2,2024-03-10T12:00:00.000Z,p1,dock,REJECTED,김기사,ops1\n" +
		"\n" +
		"--- Disputed Places ---\n" +
		"Place Name,Disputed Fields Count\n" +
		"Beta Yard,1"

	assert.Equal(t, expected, site.ExportCSV(30))
}

func TestSiteService_ExportCSV_Empty(t *testing.T) {
	site, _, _ := newTestSite(t, nil)

	expected := "Report Type,Ops Monthly Summary\n" +
		"Generated At,2024-03-15T12:00:00.000Z\n" +
		"Period,7 days\n" +
		"\n" +
		"--- Requests Summary ---\n" +
		"ID,Date,Place,Field,Status,Requested By,Reviewer\n" +
		"\n" +
		"--- Disputed Places ---\n" +
		"Place Name,Disputed Fields Count"

	assert.Equal(t, expected, site.ExportCSV(7))
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "logitrust_report_30days.csv", ReportFileName(30))
}

func TestSiteService_WatchList(t *testing.T) {
	site, _, _ := newTestSite(t, &entities.Snapshot{
		Places: []entities.Place{testPlace("p1", "Risky"), testPlace("p2", "Solid"), testPlace("p3", "Unknown")},
		Constraints: []entities.Constraint{
			testConstraint("p1", "height", "4.0", entities.ConstraintConfirmed, daysAgo(1)),
			testConstraint("p2", "height", "4.0", entities.ConstraintConfirmed, daysAgo(1)),
		},
		Reviews: append(reviewsWith("p1", 1, 2), reviewsWith("p2", 5, 5)...),
	})

	watch := site.WatchList()

	require.Len(t, watch, 2)
	assert.Equal(t, "p1", watch[0].Place.ID)
	assert.Equal(t, entities.RiskGradeD, watch[0].Score.RiskGrade)
	assert.Equal(t, "p3", watch[1].Place.ID)
	assert.Equal(t, entities.TrustLow, watch[1].Score.TrustDetails.Label)
}
