package entities

import (
	"fmt"
	"strings"
	"time"
)

// RequestStatus is the lifecycle state of an edit request.
// PENDING is the only non-terminal state.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
	RequestHold     RequestStatus = "HOLD"
)

// IsTerminal reports whether the status is a decision outcome.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestRejected || s == RequestHold
}

// ParseRequestStatus parses a status name case-insensitively.
func ParseRequestStatus(s string) (RequestStatus, error) {
	status := RequestStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case RequestPending, RequestApproved, RequestRejected, RequestHold:
		return status, nil
	}
	return "", fmt.Errorf("invalid request status: %q", s)
}

// EditRequest is a proposed change to one field of one place.
type EditRequest struct {
	ID              string        `json:"id"`
	PlaceID         string        `json:"place_id"`
	ConstraintID    string        `json:"constraint_id,omitempty"` // set when editing an existing constraint
	FieldKey        string        `json:"field_key"`
	FieldLabel      string        `json:"field_label"`
	CurrentValue    string        `json:"current_value,omitempty"` // snapshot at submission time
	RequestedValue  string        `json:"requested_value"`
	RequestedBy     string        `json:"requested_by"`
	RequestedByName string        `json:"requested_by_name"`
	RequestedByRole Role          `json:"requested_by_role"`
	Status          RequestStatus `json:"status"`
	EvidenceFiles   []string      `json:"evidence_files,omitempty"`
	Note            string        `json:"note,omitempty"`
	ReviewerID      string        `json:"reviewer_id,omitempty"`
	ReviewerNote    string        `json:"reviewer_note,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	DecidedAt       *time.Time    `json:"decided_at,omitempty"`
}
