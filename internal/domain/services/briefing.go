package services

import (
	"context"
	"fmt"

	"github.com/ersonp/logitrust/internal/domain/ports"
)

// maxBriefingTips caps how many review tips go into a briefing.
const maxBriefingTips = 10

// BriefingService produces LLM site-risk briefings for drivers.
type BriefingService struct {
	site    *SiteService
	briefer ports.Briefer
}

// NewBriefingService creates a new briefing service.
func NewBriefingService(site *SiteService, briefer ports.Briefer) *BriefingService {
	return &BriefingService{site: site, briefer: briefer}
}

// Input assembles what is known about a place for a briefing.
func (s *BriefingService) Input(placeID string) (ports.BriefingInput, error) {
	place, err := s.site.Place(placeID)
	if err != nil {
		return ports.BriefingInput{}, err
	}

	var tips []string
	for _, r := range s.site.Reviews(placeID) {
		if r.TipText == "" {
			continue
		}
		tips = append(tips, r.TipText)
		if len(tips) == maxBriefingTips {
			break
		}
	}

	return ports.BriefingInput{
		Place:         place,
		Score:         s.site.Score(placeID),
		Constraints:   s.site.FieldStatuses(placeID),
		Tips:          tips,
		Announcements: s.site.Announcements(placeID),
	}, nil
}

// Brief asks the briefer for entry, loading and wait-time risks at a place.
func (s *BriefingService) Brief(ctx context.Context, placeID string) (*ports.Briefing, error) {
	input, err := s.Input(placeID)
	if err != nil {
		return nil, err
	}
	briefing, err := s.briefer.Brief(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("generating briefing: %w", err)
	}
	return briefing, nil
}
