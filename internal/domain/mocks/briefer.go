package mocks

import (
	"context"

	"github.com/ersonp/logitrust/internal/domain/ports"
)

// Briefer is a mock implementation of ports.Briefer.
type Briefer struct {
	Result *ports.Briefing
	Err    error

	LastInput ports.BriefingInput
}

// Brief records the input and returns the configured briefing.
func (m *Briefer) Brief(_ context.Context, input ports.BriefingInput) (*ports.Briefing, error) {
	m.LastInput = input
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
