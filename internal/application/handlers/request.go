package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/services"
)

// RequestHandler handles edit request submission and review.
type RequestHandler struct {
	site *services.SiteService
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(site *services.SiteService) *RequestHandler {
	return &RequestHandler{site: site}
}

// SubmitRequest is a proposed field change as entered by a user.
type SubmitRequest struct {
	PlaceID        string   `json:"place_id"`
	FieldKey       string   `json:"field_key"`
	FieldLabel     string   `json:"field_label,omitempty"`
	RequestedValue string   `json:"requested_value"`
	Note           string   `json:"note,omitempty"`
	EvidenceFiles  []string `json:"evidence_files,omitempty"`
}

// Submit validates and records a new edit request. The field label, the
// current value and the constraint ID are filled from the place's stored
// constraint when one exists.
func (h *RequestHandler) Submit(ctx context.Context, actor *entities.User, in SubmitRequest) (*entities.EditRequest, error) {
	if actor == nil {
		return nil, services.ErrUnauthenticated
	}
	if _, err := h.site.Place(in.PlaceID); err != nil {
		return nil, err
	}

	fieldKey := strings.TrimSpace(in.FieldKey)
	if fieldKey == "" {
		return nil, fmt.Errorf("field key is required: %w", ErrInvalidInput)
	}
	value := strings.TrimSpace(in.RequestedValue)
	if value == "" {
		return nil, fmt.Errorf("requested value is required: %w", ErrInvalidInput)
	}

	input := services.SubmitInput{
		PlaceID:        in.PlaceID,
		FieldKey:       fieldKey,
		FieldLabel:     strings.TrimSpace(in.FieldLabel),
		RequestedValue: value,
		Note:           strings.TrimSpace(in.Note),
		EvidenceFiles:  in.EvidenceFiles,
	}
	for _, c := range h.site.Constraints(in.PlaceID) {
		if c.FieldKey == fieldKey {
			input.ConstraintID = c.ID
			input.CurrentValue = c.Value
			if input.FieldLabel == "" {
				input.FieldLabel = c.Label
			}
			break
		}
	}
	if input.FieldLabel == "" {
		if spec, ok := entities.FieldByKey(fieldKey); ok {
			input.FieldLabel = spec.Label
		} else {
			input.FieldLabel = fieldKey
		}
	}

	return h.site.SubmitEditRequest(ctx, actor, input)
}

// List returns requests with the given status name. An empty name returns
// every request.
func (h *RequestHandler) List(status string) ([]entities.EditRequest, error) {
	if strings.TrimSpace(status) == "" {
		return h.site.Requests(""), nil
	}
	parsed, err := entities.ParseRequestStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return h.site.Requests(parsed), nil
}

// Queue returns the ops review queue.
func (h *RequestHandler) Queue() []services.QueueItem {
	return h.site.PendingQueue()
}

// DecisionRequest is an ops decision on a pending request.
type DecisionRequest struct {
	Outcome string `json:"outcome"`
	Note    string `json:"note"`
}

// Decide validates and applies an ops decision. A reviewer note is required.
func (h *RequestHandler) Decide(ctx context.Context, actor *entities.User, requestID string, in DecisionRequest) (*entities.EditRequest, error) {
	note := strings.TrimSpace(in.Note)
	if note == "" {
		return nil, fmt.Errorf("reviewer note is required: %w", ErrInvalidInput)
	}
	outcome := entities.RequestStatus(strings.ToUpper(strings.TrimSpace(in.Outcome)))
	return h.site.DecideRequest(ctx, actor, requestID, outcome, note)
}
