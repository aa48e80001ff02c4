package handlers

import (
	"context"

	"github.com/ersonp/logitrust/internal/domain/ports"
	"github.com/ersonp/logitrust/internal/domain/services"
)

// BriefHandler handles site risk briefings.
type BriefHandler struct {
	briefing *services.BriefingService
}

// NewBriefHandler creates a new brief handler.
func NewBriefHandler(briefing *services.BriefingService) *BriefHandler {
	return &BriefHandler{briefing: briefing}
}

// Handle returns the risk briefing for a place.
func (h *BriefHandler) Handle(ctx context.Context, placeID string) (*ports.Briefing, error) {
	return h.briefing.Brief(ctx, placeID)
}
