package entities

import "time"

// ConstraintStatus is the verification state of a constraint field.
type ConstraintStatus string

const (
	ConstraintConfirmed ConstraintStatus = "CONFIRMED" // approved by ops
	ConstraintDisputed  ConstraintStatus = "DISPUTED"  // conflicting live requests
	ConstraintPending   ConstraintStatus = "PENDING"   // unverified or awaiting review
)

// Constraint is a stored fact about a site limitation, keyed by
// (PlaceID, FieldKey). There is at most one constraint per key.
type Constraint struct {
	ID        string           `json:"id"`
	PlaceID   string           `json:"place_id"`
	FieldKey  string           `json:"field_key"` // e.g. "height", "dock"
	Label     string           `json:"label"`
	Value     string           `json:"value"`
	Unit      string           `json:"unit,omitempty"`
	Status    ConstraintStatus `json:"status"`
	UpdatedAt time.Time        `json:"updated_at"`
}
