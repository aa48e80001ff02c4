package services

import (
	"time"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

// DisputeWindowDays is how far back a pending request still counts as live.
const DisputeWindowDays = 30

// ResolveStatus derives the effective status of one constraint field.
//
// Pending requests created within the window are live. Two or more live
// requests that disagree on the requested value make the field DISPUTED;
// any live request makes it PENDING. Otherwise the stored constraint status
// applies, and a field with no constraint is PENDING.
func ResolveStatus(now time.Time, placeID, fieldKey string, constraints []entities.Constraint, requests []entities.EditRequest) entities.ConstraintStatus {
	cutoff := now.AddDate(0, 0, -DisputeWindowDays)

	var live []*entities.EditRequest
	for i := range requests {
		r := &requests[i]
		if r.PlaceID == placeID && r.FieldKey == fieldKey &&
			r.Status == entities.RequestPending && r.CreatedAt.After(cutoff) {
			live = append(live, r)
		}
	}

	if len(live) >= 2 {
		first := live[0].RequestedValue
		for _, r := range live[1:] {
			if r.RequestedValue != first {
				return entities.ConstraintDisputed
			}
		}
	}
	if len(live) > 0 {
		return entities.ConstraintPending
	}

	if c := findConstraint(constraints, placeID, fieldKey); c >= 0 {
		return constraints[c].Status
	}
	return entities.ConstraintPending
}

// findConstraint returns the index of the (placeID, fieldKey) constraint or -1.
func findConstraint(constraints []entities.Constraint, placeID, fieldKey string) int {
	for i := range constraints {
		if constraints[i].PlaceID == placeID && constraints[i].FieldKey == fieldKey {
			return i
		}
	}
	return -1
}
