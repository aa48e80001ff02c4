package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
)

// SiteService holds every site collection and exposes the scoring,
// status and request lifecycle operations over them.
//
// Derived values are recomputed on each read. Reads hold the read lock for
// the whole computation; mutations persist through the store first and only
// then change memory, under the write lock.
type SiteService struct {
	store    ports.Store
	observer ports.LifecycleObserver
	now      func() time.Time
	newID    func() string

	mu   sync.RWMutex
	data entities.Snapshot
}

// Option configures a SiteService.
type Option func(*SiteService)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *SiteService) { s.now = now }
}

// WithIDGenerator sets the ID generator for new records.
func WithIDGenerator(newID func() string) Option {
	return func(s *SiteService) { s.newID = newID }
}

// WithObserver sets the lifecycle observer.
func WithObserver(o ports.LifecycleObserver) Option {
	return func(s *SiteService) { s.observer = o }
}

// NewSiteService creates an empty SiteService backed by store.
func NewSiteService(store ports.Store, opts ...Option) *SiteService {
	s := &SiteService{
		store:    store,
		observer: ports.NopObserver{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collections with the store's snapshot.
func (s *SiteService) Load(ctx context.Context) error {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading site data: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = entities.Snapshot{
		Places:        slices.Clone(snap.Places),
		Constraints:   slices.Clone(snap.Constraints),
		Requests:      slices.Clone(snap.Requests),
		Reviews:       slices.Clone(snap.Reviews),
		Versions:      slices.Clone(snap.Versions),
		Notifications: slices.Clone(snap.Notifications),
		Announcements: slices.Clone(snap.Announcements),
	}
	return nil
}

// Now returns the service clock's current time.
func (s *SiteService) Now() time.Time {
	return s.now()
}

// Places returns all places in insertion order.
func (s *SiteService) Places() []entities.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Places)
}

// Place returns one place by ID.
func (s *SiteService) Place(id string) (entities.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.findPlace(id); p != nil {
		return *p, nil
	}
	return entities.Place{}, fmt.Errorf("place %s: %w", id, ErrNotFound)
}

func (s *SiteService) findPlace(id string) *entities.Place {
	for i := range s.data.Places {
		if s.data.Places[i].ID == id {
			return &s.data.Places[i]
		}
	}
	return nil
}

// Constraints returns the stored constraints of a place.
func (s *SiteService) Constraints(placeID string) []entities.Constraint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Constraint
	for _, c := range s.data.Constraints {
		if c.PlaceID == placeID {
			out = append(out, c)
		}
	}
	return out
}

// FieldStatuses lists every scored field of a place with its resolved status.
// Fields with only pending requests carry an empty value.
func (s *SiteService) FieldStatuses(placeID string) []ports.ConstraintView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fieldStatuses(s.now(), placeID)
}

func (s *SiteService) fieldStatuses(now time.Time, placeID string) []ports.ConstraintView {
	var views []ports.ConstraintView
	for _, key := range FieldKeys(placeID, s.data.Constraints, s.data.Requests) {
		view := ports.ConstraintView{
			FieldKey: key,
			Status:   ResolveStatus(now, placeID, key, s.data.Constraints, s.data.Requests),
		}
		if i := findConstraint(s.data.Constraints, placeID, key); i >= 0 {
			c := s.data.Constraints[i]
			view.Label, view.Value, view.Unit = c.Label, c.Value, c.Unit
		} else {
			view.Label = s.pendingLabel(placeID, key)
		}
		views = append(views, view)
	}
	return views
}

func (s *SiteService) pendingLabel(placeID, fieldKey string) string {
	for _, r := range s.data.Requests {
		if r.PlaceID == placeID && r.FieldKey == fieldKey {
			return r.FieldLabel
		}
	}
	return fieldKey
}

// Versions returns the approved change history of a place, most recent first.
func (s *SiteService) Versions(placeID string) []entities.PlaceVersion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.PlaceVersion
	for _, v := range s.data.Versions {
		if v.PlaceID == placeID {
			out = append(out, v)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.PlaceVersion) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// Reviews returns the reviews of a place, most recent first.
func (s *SiteService) Reviews(placeID string) []entities.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Review
	for _, r := range s.data.Reviews {
		if r.PlaceID == placeID {
			out = append(out, r)
		}
	}
	return out
}

// Announcements returns the active announcements of a place.
func (s *SiteService) Announcements(placeID string) []entities.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Announcement
	for _, a := range s.data.Announcements {
		if a.PlaceID == placeID && a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

// Requests returns edit requests, most recent first. An empty status
// returns all of them.
func (s *SiteService) Requests(status entities.RequestStatus) []entities.EditRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.EditRequest
	for _, r := range s.data.Requests {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// Request returns one edit request by ID.
func (s *SiteService) Request(id string) (entities.EditRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.findRequest(id); i >= 0 {
		return s.data.Requests[i], nil
	}
	return entities.EditRequest{}, fmt.Errorf("request %s: %w", id, ErrNotFound)
}

func (s *SiteService) findRequest(id string) int {
	for i := range s.data.Requests {
		if s.data.Requests[i].ID == id {
			return i
		}
	}
	return -1
}

// ResolveStatus returns the effective status of one field of a place.
func (s *SiteService) ResolveStatus(placeID, fieldKey string) entities.ConstraintStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ResolveStatus(s.now(), placeID, fieldKey, s.data.Constraints, s.data.Requests)
}

// Score returns the derived score of a place. Unknown places score as a
// place with no data.
func (s *SiteService) Score(placeID string) entities.Score {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeScore(s.now(), placeID, s.data.Reviews, s.data.Constraints, s.data.Requests)
}

// PlaceScore pairs a place with its derived score.
type PlaceScore struct {
	Place entities.Place `json:"place"`
	Score entities.Score `json:"score"`
}

// WatchList returns places graded D or with LOW trust, in place order.
func (s *SiteService) WatchList() []PlaceScore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	var out []PlaceScore
	for _, p := range s.data.Places {
		score := ComputeScore(now, p.ID, s.data.Reviews, s.data.Constraints, s.data.Requests)
		if score.RiskGrade == entities.RiskGradeD || score.TrustDetails.Label == entities.TrustLow {
			out = append(out, PlaceScore{Place: p, Score: score})
		}
	}
	return out
}
