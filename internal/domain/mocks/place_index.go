package mocks

import (
	"context"

	"github.com/ersonp/logitrust/internal/domain/ports"
)

// PlaceIndex is a mock implementation of ports.PlaceIndex.
type PlaceIndex struct {
	Places  []ports.IndexedPlace
	Matches []ports.PlaceMatch
	Err     error

	EnsureCollectionErr error

	// Call tracking
	EnsureCollectionCallCount int
	DeleteCollectionCallCount int
	LastVectorSize            uint64
	LastLimit                 int
}

// EnsureCollection records the vector size.
func (m *PlaceIndex) EnsureCollection(_ context.Context, vectorSize uint64) error {
	m.EnsureCollectionCallCount++
	m.LastVectorSize = vectorSize
	return m.EnsureCollectionErr
}

// DeleteCollection drops all stored places.
func (m *PlaceIndex) DeleteCollection(_ context.Context) error {
	m.DeleteCollectionCallCount++
	m.Places = nil
	return m.Err
}

// Upsert appends the places.
func (m *PlaceIndex) Upsert(_ context.Context, places []ports.IndexedPlace) error {
	if m.Err != nil {
		return m.Err
	}
	m.Places = append(m.Places, places...)
	return nil
}

// Search returns the configured matches, truncated to limit.
func (m *PlaceIndex) Search(_ context.Context, _ []float32, limit int) ([]ports.PlaceMatch, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastLimit = limit
	if limit > 0 && len(m.Matches) > limit {
		return m.Matches[:limit], nil
	}
	return m.Matches, nil
}
