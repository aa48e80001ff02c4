// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

// Store is the persistence collaborator for site data.
// It hands over the full snapshot at start-up and is written through on
// every mutation.
type Store interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// Load returns every stored collection.
	Load(ctx context.Context) (*entities.Snapshot, error)

	// Seed replaces all stored collections with snap.
	Seed(ctx context.Context, snap *entities.Snapshot) error

	// SavePlace inserts a new place.
	SavePlace(ctx context.Context, place *entities.Place) error

	// SaveRequest inserts or updates an edit request.
	SaveRequest(ctx context.Context, req *entities.EditRequest) error

	// SaveReview inserts a review.
	SaveReview(ctx context.Context, review *entities.Review) error

	// SaveAnnouncement inserts an announcement.
	SaveAnnouncement(ctx context.Context, ann *entities.Announcement) error

	// ApplyDecision persists every effect of a request decision in one
	// transaction.
	ApplyDecision(ctx context.Context, d *Decision) error

	// MarkNotificationRead flags a notification as read.
	MarkNotificationRead(ctx context.Context, id string) error
}

// Decision is the full set of writes produced by deciding a request.
// Constraint and Version are set only for approvals.
type Decision struct {
	Request      entities.EditRequest
	Constraint   *entities.Constraint
	Version      *entities.PlaceVersion
	Notification entities.Notification
}
