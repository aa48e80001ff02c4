package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/application/handlers"
	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/mocks"
	"github.com/ersonp/logitrust/internal/domain/services"
	"github.com/ersonp/logitrust/internal/infrastructure/metrics"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (http.Handler, *metrics.Recorder) {
	t.Helper()
	recorder := metrics.NewRecorder()
	var seq atomic.Int64
	site := services.NewSiteService(mocks.NewStore(entities.DemoSnapshot(testNow)),
		services.WithClock(func() time.Time { return testNow }),
		services.WithIDGenerator(func() string { return fmt.Sprintf("id-%d", seq.Add(1)) }),
		services.WithObserver(recorder),
	)
	require.NoError(t, site.Load(t.Context()))

	router := NewRouter(Deps{
		Places:        handlers.NewPlaceHandler(site),
		Requests:      handlers.NewRequestHandler(site),
		Reports:       handlers.NewReportHandler(site),
		Notifications: handlers.NewNotificationHandler(site),
		Metrics:       recorder.Handler(),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return router, recorder
}

func do(t *testing.T, router http.Handler, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if user != "" {
		req.Header.Set(UserHeader, user)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/ping", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestPlaces(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/places?q=a%EB%8F%99", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	places := decodeBody[[]services.PlaceScore](t, rec)
	require.Len(t, places, 1)
	assert.Equal(t, "p1", places[0].Place.ID)

	rec = do(t, router, http.MethodGet, "/api/places?q=zzz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/places/p1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decodeBody[handlers.PlaceDetail](t, rec)
	assert.Len(t, detail.Fields, 5)

	rec = do(t, router, http.MethodGet, "/api/places/nope", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestPlaceSubresources(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/places/p5/status/dock", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[handlers.FieldStatus](t, rec)
	assert.Equal(t, entities.ConstraintDisputed, status.Status)

	rec = do(t, router, http.MethodGet, "/api/places/p9/score", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	score := decodeBody[services.PlaceScore](t, rec)
	assert.Equal(t, entities.RiskGradeA, score.Score.RiskGrade)

	rec = do(t, router, http.MethodGet, "/api/places/p1/versions", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]entities.PlaceVersion](t, rec), 1)

	rec = do(t, router, http.MethodGet, "/api/places/p1/constraints", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/places/p1/briefing", "", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReviewsAndAnnouncements(t *testing.T) {
	router, recorder := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/places/p2/reviews", "", `{"rating":4}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/places/p2/reviews", "u1", `{"rating":9}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/places/p2/reviews", "u1", `{"rating":4,"tip_text":"좋음"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	review := decodeBody[entities.Review](t, rec)
	assert.Equal(t, "p2", review.PlaceID)
	assert.Equal(t, "김기사", review.UserName)

	body := collectMetrics(t, recorder)
	assert.Contains(t, body, "logitrust_reviews_added_total 1")

	rec = do(t, router, http.MethodPost, "/api/places/p2/announcements", "u1", `{"title":"공지"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/places/p2/announcements", "u3", `{"title":"공지","content":"내용"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRequestLifecycle(t *testing.T) {
	router, recorder := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/requests", "", `{"place_id":"p1","field_key":"height","requested_value":"4.0"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/requests", "u2", `{"place_id":"p1","field_key":"height","requested_value":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/requests", "u2", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/requests", "u2", `{"place_id":"p1","field_key":"height","requested_value":"4.0"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[entities.EditRequest](t, rec)
	assert.Equal(t, "3.5", created.CurrentValue)

	rec = do(t, router, http.MethodGet, "/api/places/p1/status/height", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entities.ConstraintDisputed, decodeBody[handlers.FieldStatus](t, rec).Status)

	decision := "/api/requests/" + created.ID + "/decision"
	rec = do(t, router, http.MethodPut, decision, "u1", `{"outcome":"APPROVED","note":"ok"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPut, decision, "ops1", `{"outcome":"APPROVED","note":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/requests/missing/decision", "ops1", `{"outcome":"APPROVED","note":"ok"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPut, decision, "ops1", `{"outcome":"APPROVED","note":"현장 확인"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entities.RequestApproved, decodeBody[entities.EditRequest](t, rec).Status)

	rec = do(t, router, http.MethodPut, decision, "ops1", `{"outcome":"REJECTED","note":"again"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/requests?status=approved", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]entities.EditRequest](t, rec), 3)

	rec = do(t, router, http.MethodGet, "/api/requests?status=bogus", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/requests/queue", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]services.QueueItem](t, rec), 6)

	body := collectMetrics(t, recorder)
	assert.Contains(t, body, `logitrust_edit_requests_submitted_total{field_key="height"} 1`)
	assert.Contains(t, body, `logitrust_edit_requests_decided_total{outcome="APPROVED"} 1`)
}

func TestNotifications(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/notifications", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/requests/req_p1/decision", "ops1", `{"outcome":"HOLD","note":"추가 사진 필요"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/notifications", "u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[handlers.NotificationList](t, rec)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, 1, list.Unread)
	assert.Equal(t, "/driver/places/p1", list.Notifications[0].Link)

	path := "/api/notifications/" + list.Notifications[0].ID + "/read"
	rec = do(t, router, http.MethodPut, path, "u2", "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPut, path, "u1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/notifications", "u2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"unread":0,"notifications":[]}`, rec.Body.String())
}

func TestReports(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/reports?days=30", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	report := decodeBody[services.Report](t, rec)
	assert.Equal(t, 6, report.Total)

	rec = do(t, router, http.MethodGet, "/api/reports?days=abc", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/reports/export?days=7", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "logitrust_report_7days.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Report Type,Ops Monthly Summary"))

	rec = do(t, router, http.MethodGet, "/api/watchlist", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchUnconfigured(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/search?q=dock", "", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", services.ErrUnauthenticated), http.StatusUnauthorized},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrAlreadyDecided, http.StatusConflict},
		{handlers.ErrInvalidInput, http.StatusBadRequest},
		{services.ErrInvalidOutcome, http.StatusBadRequest},
		{services.ErrInvalidRating, http.StatusBadRequest},
		{services.ErrInvalidPlace, http.StatusBadRequest},
		{services.ErrSearchUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func collectMetrics(t *testing.T, recorder *metrics.Recorder) string {
	t.Helper()
	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}
