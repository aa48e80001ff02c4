// Package httpapi serves the site operations over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ersonp/logitrust/internal/application/handlers"
	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/services"
)

// UserHeader identifies the acting demo user. Roles are tags, not credentials.
const UserHeader = "X-User-ID"

// maxBodyBytes limits request bodies.
const maxBodyBytes = 1 << 20

// Deps are the use case handlers served by the API. Search, Brief and
// Metrics are optional.
type Deps struct {
	Places        *handlers.PlaceHandler
	Requests      *handlers.RequestHandler
	Reports       *handlers.ReportHandler
	Notifications *handlers.NotificationHandler
	Search        *handlers.SearchHandler
	Brief         *handlers.BriefHandler
	Metrics       http.Handler
	Logger        *slog.Logger
}

type api struct {
	Deps
}

// NewRouter builds the chi router for the API.
func NewRouter(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	h := &api{Deps: deps}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(actorMiddleware)

		r.Get("/ping", h.ping)

		r.Get("/places", h.listPlaces)
		r.Post("/places", h.addPlace)
		r.Route("/places/{placeId}", func(r chi.Router) {
			r.Get("/", h.showPlace)
			r.Get("/score", h.placeScore)
			r.Get("/status/{fieldKey}", h.fieldStatus)
			r.Get("/constraints", h.placeFields)
			r.Get("/versions", h.placeVersions)
			r.Get("/briefing", h.placeBriefing)
			r.Post("/reviews", h.addReview)
			r.Post("/announcements", h.addAnnouncement)
		})

		r.Get("/requests", h.listRequests)
		r.Post("/requests", h.submitRequest)
		r.Get("/requests/queue", h.requestQueue)
		r.Put("/requests/{requestId}/decision", h.decideRequest)

		r.Get("/reports", h.report)
		r.Get("/reports/export", h.exportReport)
		r.Get("/watchlist", h.watchList)
		r.Get("/search", h.search)

		r.Get("/notifications", h.listNotifications)
		r.Put("/notifications/{notificationId}/read", h.markNotificationRead)
	})

	return r
}

type actorKey struct{}

// actorMiddleware resolves the X-User-ID header to a demo user. Requests
// without a known user proceed with no actor.
func actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(UserHeader))
		if user, ok := entities.FindUser(id); ok {
			r = r.WithContext(context.WithValue(r.Context(), actorKey{}, &user))
		}
		next.ServeHTTP(w, r)
	})
}

func actorFrom(ctx context.Context) *entities.User {
	user, _ := ctx.Value(actorKey{}).(*entities.User)
	return user
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("encoding response", "error", err)
	}
}

// statusFor maps domain and validation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyDecided):
		return http.StatusConflict
	case errors.Is(err, handlers.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidOutcome),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidPlace):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSearchUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *api) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg = http.StatusText(status)
	}
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *api) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

// intQuery parses an optional integer query parameter.
func intQuery(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, handlers.ErrInvalidInput)
	}
	return n, nil
}
