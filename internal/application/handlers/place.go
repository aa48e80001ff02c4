package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
	"github.com/ersonp/logitrust/internal/domain/services"
)

// PlaceHandler handles place browsing, reviews and announcements.
type PlaceHandler struct {
	site *services.SiteService
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(site *services.SiteService) *PlaceHandler {
	return &PlaceHandler{site: site}
}

// List returns places matching query with their scores.
func (h *PlaceHandler) List(query string) []services.PlaceScore {
	var out []services.PlaceScore
	for _, p := range h.site.Places() {
		if p.Matches(query) {
			out = append(out, services.PlaceScore{Place: p, Score: h.site.Score(p.ID)})
		}
	}
	return out
}

// PlaceDetail is everything shown on a place page.
type PlaceDetail struct {
	Place         entities.Place          `json:"place"`
	Score         entities.Score          `json:"score"`
	Fields        []ports.ConstraintView  `json:"fields"`
	Versions      []entities.PlaceVersion `json:"versions"`
	Reviews       []entities.Review       `json:"reviews"`
	Announcements []entities.Announcement `json:"announcements"`
}

// Show returns the detail view of a place.
func (h *PlaceHandler) Show(placeID string) (*PlaceDetail, error) {
	place, err := h.site.Place(placeID)
	if err != nil {
		return nil, err
	}
	return &PlaceDetail{
		Place:         place,
		Score:         h.site.Score(placeID),
		Fields:        h.site.FieldStatuses(placeID),
		Versions:      h.site.Versions(placeID),
		Reviews:       h.site.Reviews(placeID),
		Announcements: h.site.Announcements(placeID),
	}, nil
}

// Score returns the derived score of an existing place.
func (h *PlaceHandler) Score(placeID string) (*services.PlaceScore, error) {
	place, err := h.site.Place(placeID)
	if err != nil {
		return nil, err
	}
	return &services.PlaceScore{Place: place, Score: h.site.Score(placeID)}, nil
}

// FieldStatus is the resolved status of one field of a place.
type FieldStatus struct {
	PlaceID  string                    `json:"place_id"`
	FieldKey string                    `json:"field_key"`
	Status   entities.ConstraintStatus `json:"status"`
}

// Status resolves one field of an existing place.
func (h *PlaceHandler) Status(placeID, fieldKey string) (*FieldStatus, error) {
	if _, err := h.site.Place(placeID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(fieldKey) == "" {
		return nil, fmt.Errorf("field key is required: %w", ErrInvalidInput)
	}
	return &FieldStatus{
		PlaceID:  placeID,
		FieldKey: fieldKey,
		Status:   h.site.ResolveStatus(placeID, fieldKey),
	}, nil
}

// Fields lists the scored fields of an existing place.
func (h *PlaceHandler) Fields(placeID string) ([]ports.ConstraintView, error) {
	if _, err := h.site.Place(placeID); err != nil {
		return nil, err
	}
	return h.site.FieldStatuses(placeID), nil
}

// Versions lists the approved change history of an existing place.
func (h *PlaceHandler) Versions(placeID string) ([]entities.PlaceVersion, error) {
	if _, err := h.site.Place(placeID); err != nil {
		return nil, err
	}
	return h.site.Versions(placeID), nil
}

// WatchList returns places graded D or with LOW trust.
func (h *PlaceHandler) WatchList() []services.PlaceScore {
	return h.site.WatchList()
}

// AddPlaceInput is a new place as entered by a user.
type AddPlaceInput struct {
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Type    string   `json:"place_type"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// Add registers a new place.
func (h *PlaceHandler) Add(ctx context.Context, in AddPlaceInput) (*entities.Place, error) {
	place := entities.Place{
		ID:      strings.TrimSpace(in.ID),
		Name:    in.Name,
		Address: strings.TrimSpace(in.Address),
		Type:    entities.PlaceType(strings.ToUpper(strings.TrimSpace(in.Type))),
		Lat:     in.Lat,
		Lng:     in.Lng,
	}
	if place.Type == "" {
		place.Type = entities.PlaceTypeWarehouse
	}
	return h.site.AddPlace(ctx, place)
}

// ReviewRequest is a new review as entered by a driver.
type ReviewRequest struct {
	PlaceID string   `json:"place_id"`
	Rating  int      `json:"rating"`
	TipText string   `json:"tip_text"`
	Tags    []string `json:"tags,omitempty"`
}

// Review adds a review to an existing place.
func (h *PlaceHandler) Review(ctx context.Context, actor *entities.User, in ReviewRequest) (*entities.Review, error) {
	if _, err := h.site.Place(in.PlaceID); err != nil {
		return nil, err
	}
	return h.site.AddReview(ctx, actor, services.ReviewInput{
		PlaceID: in.PlaceID,
		Rating:  in.Rating,
		TipText: strings.TrimSpace(in.TipText),
		Tags:    in.Tags,
	})
}

// AnnouncementRequest is a new dispatcher notice.
type AnnouncementRequest struct {
	PlaceID string `json:"place_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Announce posts an announcement on a place.
func (h *PlaceHandler) Announce(ctx context.Context, actor *entities.User, in AnnouncementRequest) (*entities.Announcement, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("announcement title is required: %w", ErrInvalidInput)
	}
	return h.site.AddAnnouncement(ctx, actor, services.AnnouncementInput{
		PlaceID: in.PlaceID,
		Title:   title,
		Content: strings.TrimSpace(in.Content),
	})
}
