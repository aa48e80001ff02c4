package mocks

import "github.com/ersonp/logitrust/internal/domain/entities"

// Observer is a mock implementation of ports.LifecycleObserver.
type Observer struct {
	Submitted []entities.EditRequest
	Decided   []entities.EditRequest
	Reviews   []entities.Review
}

func (m *Observer) RequestSubmitted(req entities.EditRequest) { m.Submitted = append(m.Submitted, req) }
func (m *Observer) RequestDecided(req entities.EditRequest)   { m.Decided = append(m.Decided, req) }
func (m *Observer) ReviewAdded(review entities.Review)        { m.Reviews = append(m.Reviews, review) }
