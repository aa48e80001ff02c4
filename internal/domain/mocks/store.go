// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
)

// Store is a mock implementation of ports.Store. It records every write.
type Store struct {
	Snapshot *entities.Snapshot
	Err      error
	LoadErr  error

	Places        []entities.Place
	Requests      []entities.EditRequest
	Reviews       []entities.Review
	Announcements []entities.Announcement
	Decisions     []ports.Decision
	ReadIDs       []string
	SeedCount     int
}

// NewStore creates a mock Store that loads snap.
func NewStore(snap *entities.Snapshot) *Store {
	if snap == nil {
		snap = &entities.Snapshot{}
	}
	return &Store{Snapshot: snap}
}

// EnsureSchema returns the configured error.
func (m *Store) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes nothing.
func (m *Store) Close() error {
	return nil
}

// Load returns the configured snapshot.
func (m *Store) Load(_ context.Context) (*entities.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Snapshot == nil {
		return &entities.Snapshot{}, nil
	}
	return m.Snapshot, nil
}

// Seed replaces the configured snapshot.
func (m *Store) Seed(_ context.Context, snap *entities.Snapshot) error {
	if m.Err != nil {
		return m.Err
	}
	m.SeedCount++
	m.Snapshot = snap
	return nil
}

// SavePlace records the place.
func (m *Store) SavePlace(_ context.Context, place *entities.Place) error {
	if m.Err != nil {
		return m.Err
	}
	m.Places = append(m.Places, *place)
	return nil
}

// SaveRequest records the request.
func (m *Store) SaveRequest(_ context.Context, req *entities.EditRequest) error {
	if m.Err != nil {
		return m.Err
	}
	m.Requests = append(m.Requests, *req)
	return nil
}

// SaveReview records the review.
func (m *Store) SaveReview(_ context.Context, review *entities.Review) error {
	if m.Err != nil {
		return m.Err
	}
	m.Reviews = append(m.Reviews, *review)
	return nil
}

// SaveAnnouncement records the announcement.
func (m *Store) SaveAnnouncement(_ context.Context, ann *entities.Announcement) error {
	if m.Err != nil {
		return m.Err
	}
	m.Announcements = append(m.Announcements, *ann)
	return nil
}

// ApplyDecision records the decision.
func (m *Store) ApplyDecision(_ context.Context, d *ports.Decision) error {
	if m.Err != nil {
		return m.Err
	}
	m.Decisions = append(m.Decisions, *d)
	return nil
}

// MarkNotificationRead records the notification ID.
func (m *Store) MarkNotificationRead(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	m.ReadIDs = append(m.ReadIDs, id)
	return nil
}
