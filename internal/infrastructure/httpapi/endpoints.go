package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ersonp/logitrust/internal/application/handlers"
	"github.com/ersonp/logitrust/internal/domain/services"
)

func (h *api) ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *api) listPlaces(w http.ResponseWriter, r *http.Request) {
	places := h.Places.List(r.URL.Query().Get("q"))
	h.writeJSON(w, http.StatusOK, nonNil(places))
}

func (h *api) addPlace(w http.ResponseWriter, r *http.Request) {
	if actorFrom(r.Context()) == nil {
		h.writeError(w, r, services.ErrUnauthenticated)
		return
	}
	var in handlers.AddPlaceInput
	if !h.decode(w, r, &in) {
		return
	}
	place, err := h.Places.Add(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, place)
}

func (h *api) showPlace(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Places.Show(chi.URLParam(r, "placeId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *api) placeScore(w http.ResponseWriter, r *http.Request) {
	score, err := h.Places.Score(chi.URLParam(r, "placeId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, score)
}

func (h *api) fieldStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Places.Status(chi.URLParam(r, "placeId"), chi.URLParam(r, "fieldKey"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, status)
}

func (h *api) placeFields(w http.ResponseWriter, r *http.Request) {
	fields, err := h.Places.Fields(chi.URLParam(r, "placeId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(fields))
}

func (h *api) placeVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.Places.Versions(chi.URLParam(r, "placeId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(versions))
}

func (h *api) placeBriefing(w http.ResponseWriter, r *http.Request) {
	if h.Brief == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "briefing is not configured"})
		return
	}
	briefing, err := h.Brief.Handle(r.Context(), chi.URLParam(r, "placeId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, briefing)
}

func (h *api) addReview(w http.ResponseWriter, r *http.Request) {
	var in handlers.ReviewRequest
	if !h.decode(w, r, &in) {
		return
	}
	in.PlaceID = chi.URLParam(r, "placeId")
	review, err := h.Places.Review(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, review)
}

func (h *api) addAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in handlers.AnnouncementRequest
	if !h.decode(w, r, &in) {
		return
	}
	in.PlaceID = chi.URLParam(r, "placeId")
	ann, err := h.Places.Announce(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, ann)
}

func (h *api) listRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Requests.List(r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(requests))
}

func (h *api) submitRequest(w http.ResponseWriter, r *http.Request) {
	var in handlers.SubmitRequest
	if !h.decode(w, r, &in) {
		return
	}
	req, err := h.Requests.Submit(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, req)
}

func (h *api) requestQueue(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, nonNil(h.Requests.Queue()))
}

func (h *api) decideRequest(w http.ResponseWriter, r *http.Request) {
	var in handlers.DecisionRequest
	if !h.decode(w, r, &in) {
		return
	}
	req, err := h.Requests.Decide(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "requestId"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, req)
}

func (h *api) report(w http.ResponseWriter, r *http.Request) {
	days, err := intQuery(r, "days")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	report, err := h.Reports.Generate(days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *api) exportReport(w http.ResponseWriter, r *http.Request) {
	days, err := intQuery(r, "days")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	export, err := h.Reports.Export(days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.Content))
}

func (h *api) watchList(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, nonNil(h.Places.WatchList()))
}

func (h *api) search(w http.ResponseWriter, r *http.Request) {
	if h.Search == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "semantic search is not configured"})
		return
	}
	limit, err := intQuery(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.Search.Handle(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *api) listNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.Notifications.List(actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list.Notifications = nonNil(list.Notifications)
	h.writeJSON(w, http.StatusOK, list)
}

func (h *api) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	err := h.Notifications.MarkRead(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "notificationId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// nonNil renders empty lists as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
