package entities

import "time"

// NoPriorValue is recorded as OldValue when an approval creates a constraint.
const NoPriorValue = "(none)"

// PlaceVersion is an immutable audit record of an approved constraint change.
// Exactly one exists per APPROVED request.
type PlaceVersion struct {
	ID              string    `json:"id"`
	PlaceID         string    `json:"place_id"`
	SourceRequestID string    `json:"source_request_id"`
	FieldKey        string    `json:"field_key"`
	Label           string    `json:"label"`
	OldValue        string    `json:"old_value"`
	NewValue        string    `json:"new_value"`
	ApprovedBy      string    `json:"approved_by"`
	CreatedAt       time.Time `json:"created_at"`
}
