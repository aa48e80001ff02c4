package ports

import "github.com/ersonp/logitrust/internal/domain/entities"

// LifecycleObserver is notified after each successful mutation.
type LifecycleObserver interface {
	RequestSubmitted(req entities.EditRequest)
	RequestDecided(req entities.EditRequest)
	ReviewAdded(review entities.Review)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) RequestSubmitted(entities.EditRequest) {}
func (NopObserver) RequestDecided(entities.EditRequest)   {}
func (NopObserver) ReviewAdded(entities.Review)           {}
