package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
)

// SubmitInput is a new edit request as entered by a user.
type SubmitInput struct {
	PlaceID        string
	ConstraintID   string
	FieldKey       string
	FieldLabel     string
	CurrentValue   string
	RequestedValue string
	Note           string
	EvidenceFiles  []string
}

// SubmitEditRequest records a new PENDING edit request from actor.
// Field and place existence are not checked here.
func (s *SiteService) SubmitEditRequest(ctx context.Context, actor *entities.User, in SubmitInput) (*entities.EditRequest, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	req := entities.EditRequest{
		ID:              s.newID(),
		PlaceID:         in.PlaceID,
		ConstraintID:    in.ConstraintID,
		FieldKey:        in.FieldKey,
		FieldLabel:      in.FieldLabel,
		CurrentValue:    in.CurrentValue,
		RequestedValue:  in.RequestedValue,
		RequestedBy:     actor.ID,
		RequestedByName: actor.Name,
		RequestedByRole: actor.Role,
		Status:          entities.RequestPending,
		EvidenceFiles:   in.EvidenceFiles,
		Note:            in.Note,
		CreatedAt:       s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveRequest(ctx, &req); err != nil {
		return nil, fmt.Errorf("saving request: %w", err)
	}
	s.data.Requests = slices.Insert(s.data.Requests, 0, req)
	s.observer.RequestSubmitted(req)
	return &req, nil
}

// DecideRequest applies an ops decision to a pending request.
//
// Every outcome sets the decision fields and notifies the submitter. An
// approval also upserts the constraint and appends a place version. The
// reviewer note is stored as given.
func (s *SiteService) DecideRequest(ctx context.Context, actor *entities.User, requestID string, outcome entities.RequestStatus, note string) (*entities.EditRequest, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if actor.Role != entities.RoleOps {
		return nil, fmt.Errorf("deciding requests as %s: %w", actor.Role, ErrForbidden)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findRequest(requestID)
	if idx < 0 {
		return nil, fmt.Errorf("request %s: %w", requestID, ErrNotFound)
	}
	if !outcome.IsTerminal() {
		return nil, fmt.Errorf("%q: %w", outcome, ErrInvalidOutcome)
	}
	if s.data.Requests[idx].Status != entities.RequestPending {
		return nil, fmt.Errorf("request %s is %s: %w", requestID, s.data.Requests[idx].Status, ErrAlreadyDecided)
	}

	now := s.now()
	req := s.data.Requests[idx]
	req.Status = outcome
	req.ReviewerID = actor.ID
	req.ReviewerNote = note
	req.DecidedAt = &now

	d := &ports.Decision{
		Request: req,
		Notification: entities.Notification{
			ID:        s.newID(),
			UserID:    req.RequestedBy,
			Type:      notificationTypeFor(outcome),
			Message:   decisionMessage(req.FieldLabel, outcome, note),
			Link:      "/driver/places/" + req.PlaceID,
			CreatedAt: now,
		},
	}

	cIdx := findConstraint(s.data.Constraints, req.PlaceID, req.FieldKey)
	if outcome == entities.RequestApproved {
		var c entities.Constraint
		oldValue := entities.NoPriorValue
		if cIdx >= 0 {
			c = s.data.Constraints[cIdx]
			oldValue = c.Value
		} else {
			c = entities.Constraint{
				ID:       req.ConstraintID,
				PlaceID:  req.PlaceID,
				FieldKey: req.FieldKey,
				Label:    req.FieldLabel,
			}
			if c.ID == "" {
				c.ID = s.newID()
			}
		}
		c.Value = req.RequestedValue
		c.Status = entities.ConstraintConfirmed
		c.UpdatedAt = now
		d.Constraint = &c
		d.Version = &entities.PlaceVersion{
			ID:              s.newID(),
			PlaceID:         req.PlaceID,
			SourceRequestID: req.ID,
			FieldKey:        req.FieldKey,
			Label:           req.FieldLabel,
			OldValue:        oldValue,
			NewValue:        req.RequestedValue,
			ApprovedBy:      actor.ID,
			CreatedAt:       now,
		}
	}

	if err := s.store.ApplyDecision(ctx, d); err != nil {
		return nil, fmt.Errorf("applying decision: %w", err)
	}

	s.data.Requests[idx] = req
	s.data.Notifications = slices.Insert(s.data.Notifications, 0, d.Notification)
	if d.Constraint != nil {
		if cIdx >= 0 {
			s.data.Constraints[cIdx] = *d.Constraint
		} else {
			s.data.Constraints = append(s.data.Constraints, *d.Constraint)
		}
		s.data.Versions = slices.Insert(s.data.Versions, 0, *d.Version)
	}
	s.observer.RequestDecided(req)
	return &req, nil
}

func notificationTypeFor(outcome entities.RequestStatus) entities.NotificationType {
	switch outcome {
	case entities.RequestApproved:
		return entities.NotificationRequestApproved
	case entities.RequestRejected:
		return entities.NotificationRequestRejected
	default:
		return entities.NotificationRequestHold
	}
}

func decisionMessage(label string, outcome entities.RequestStatus, note string) string {
	switch outcome {
	case entities.RequestApproved:
		return fmt.Sprintf("'%s' edit request was approved.", label)
	case entities.RequestRejected:
		return fmt.Sprintf("'%s' edit request was rejected: %s", label, note)
	default:
		return fmt.Sprintf("'%s' edit request was put on hold: %s", label, note)
	}
}

// ReviewInput is a new review as entered by a driver.
type ReviewInput struct {
	PlaceID string
	Rating  int
	TipText string
	Tags    []string
}

// AddReview records a review from actor.
func (s *SiteService) AddReview(ctx context.Context, actor *entities.User, in ReviewInput) (*entities.Review, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%d: %w", in.Rating, ErrInvalidRating)
	}

	review := entities.Review{
		ID:        s.newID(),
		PlaceID:   in.PlaceID,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Rating:    in.Rating,
		TipText:   in.TipText,
		Tags:      in.Tags,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveReview(ctx, &review); err != nil {
		return nil, fmt.Errorf("saving review: %w", err)
	}
	s.data.Reviews = slices.Insert(s.data.Reviews, 0, review)
	s.observer.ReviewAdded(review)
	return &review, nil
}

// AddPlace registers a new place. An empty ID gets a generated one.
func (s *SiteService) AddPlace(ctx context.Context, place entities.Place) (*entities.Place, error) {
	place.Name = strings.TrimSpace(place.Name)
	if place.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrInvalidPlace)
	}
	if !place.Type.IsValid() {
		return nil, fmt.Errorf("place type %q: %w", place.Type, ErrInvalidPlace)
	}
	if place.ID == "" {
		place.ID = s.newID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findPlace(place.ID) != nil {
		return nil, fmt.Errorf("place %s already exists: %w", place.ID, ErrInvalidPlace)
	}
	if err := s.store.SavePlace(ctx, &place); err != nil {
		return nil, fmt.Errorf("saving place: %w", err)
	}
	s.data.Places = append(s.data.Places, place)
	return &place, nil
}

// AnnouncementInput is a new dispatcher notice.
type AnnouncementInput struct {
	PlaceID string
	Title   string
	Content string
}

// AddAnnouncement posts an active announcement for a place. Only dispatch
// and ops users may post.
func (s *SiteService) AddAnnouncement(ctx context.Context, actor *entities.User, in AnnouncementInput) (*entities.Announcement, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if actor.Role != entities.RoleDispatch && actor.Role != entities.RoleOps {
		return nil, fmt.Errorf("posting announcements as %s: %w", actor.Role, ErrForbidden)
	}

	ann := entities.Announcement{
		ID:        s.newID(),
		PlaceID:   in.PlaceID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedBy: actor.ID,
		CreatedAt: s.now(),
		IsActive:  true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findPlace(in.PlaceID) == nil {
		return nil, fmt.Errorf("place %s: %w", in.PlaceID, ErrNotFound)
	}
	if err := s.store.SaveAnnouncement(ctx, &ann); err != nil {
		return nil, fmt.Errorf("saving announcement: %w", err)
	}
	s.data.Announcements = slices.Insert(s.data.Announcements, 0, ann)
	return &ann, nil
}

// Notifications returns the notifications addressed to userID, most recent first.
func (s *SiteService) Notifications(userID string) []entities.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Notification
	for _, n := range s.data.Notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkNotificationRead flags one of actor's notifications as read.
func (s *SiteService) MarkNotificationRead(ctx context.Context, actor *entities.User, id string) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Notifications {
		n := &s.data.Notifications[i]
		if n.ID != id {
			continue
		}
		if n.UserID != actor.ID {
			return fmt.Errorf("notification %s: %w", id, ErrForbidden)
		}
		if err := s.store.MarkNotificationRead(ctx, id); err != nil {
			return fmt.Errorf("marking notification read: %w", err)
		}
		n.IsRead = true
		return nil
	}
	return fmt.Errorf("notification %s: %w", id, ErrNotFound)
}

// QueueItem is a pending request with the current status of its field.
type QueueItem struct {
	Request     entities.EditRequest      `json:"request"`
	FieldStatus entities.ConstraintStatus `json:"field_status"`
}

// PendingQueue returns PENDING requests, most recent first.
func (s *SiteService) PendingQueue() []QueueItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	var out []QueueItem
	for _, r := range s.data.Requests {
		if r.Status != entities.RequestPending {
			continue
		}
		out = append(out, QueueItem{
			Request:     r,
			FieldStatus: ResolveStatus(now, r.PlaceID, r.FieldKey, s.data.Constraints, s.data.Requests),
		})
	}
	return out
}

// RecentDecisions returns up to limit decided requests in collection order.
func (s *SiteService) RecentDecisions(limit int) []entities.EditRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.EditRequest
	for _, r := range s.data.Requests {
		if limit > 0 && len(out) == limit {
			break
		}
		if r.Status.IsTerminal() {
			out = append(out, r)
		}
	}
	return out
}
