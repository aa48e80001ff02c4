package ports

import (
	"context"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

// BriefingInput is everything known about a site that a briefing may use.
type BriefingInput struct {
	Place         entities.Place
	Score         entities.Score
	Constraints   []ConstraintView
	Tips          []string
	Announcements []entities.Announcement
}

// ConstraintView is a constraint field with its resolved status.
type ConstraintView struct {
	FieldKey string                    `json:"field_key"`
	Label    string                    `json:"label"`
	Value    string                    `json:"value"`
	Unit     string                    `json:"unit,omitempty"`
	Status   entities.ConstraintStatus `json:"status"`
}

// Briefing is a driver-facing risk summary for a site.
type Briefing struct {
	Summary         string   `json:"summary"`
	EntryCautions   []string `json:"entry_cautions"`
	LoadingPosition string   `json:"loading_position"`
	WaitTimeRisks   []string `json:"wait_time_risks"`
}

// Briefer produces site risk briefings.
type Briefer interface {
	Brief(ctx context.Context, input BriefingInput) (*Briefing, error)
}
