package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Load reads every collection. Places and constraints come back in
// insertion order; the other collections newest insert first.
func (r *Repository) Load(ctx context.Context) (*entities.Snapshot, error) {
	snap := &entities.Snapshot{}
	var err error

	if snap.Places, err = r.loadPlaces(ctx); err != nil {
		return nil, err
	}
	if snap.Constraints, err = r.loadConstraints(ctx); err != nil {
		return nil, err
	}
	if snap.Requests, err = r.loadRequests(ctx); err != nil {
		return nil, err
	}
	if snap.Reviews, err = r.loadReviews(ctx); err != nil {
		return nil, err
	}
	if snap.Versions, err = r.loadVersions(ctx); err != nil {
		return nil, err
	}
	if snap.Notifications, err = r.loadNotifications(ctx); err != nil {
		return nil, err
	}
	if snap.Announcements, err = r.loadAnnouncements(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

// Seed replaces every collection with snap in one transaction.
func (r *Repository) Seed(ctx context.Context, snap *entities.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"places", "constraints", "edit_requests", "reviews", "place_versions", "notifications", "announcements"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i := range snap.Places {
		if err := insertPlace(ctx, tx, &snap.Places[i]); err != nil {
			return err
		}
	}
	for i := range snap.Constraints {
		if err := upsertConstraint(ctx, tx, &snap.Constraints[i]); err != nil {
			return err
		}
	}
	// Newest-first collections are inserted oldest first so rowid order
	// matches on reload.
	for i := len(snap.Requests) - 1; i >= 0; i-- {
		if err := upsertRequest(ctx, tx, &snap.Requests[i]); err != nil {
			return err
		}
	}
	for i := len(snap.Reviews) - 1; i >= 0; i-- {
		if err := insertReview(ctx, tx, &snap.Reviews[i]); err != nil {
			return err
		}
	}
	for i := len(snap.Versions) - 1; i >= 0; i-- {
		if err := insertVersion(ctx, tx, &snap.Versions[i]); err != nil {
			return err
		}
	}
	for i := len(snap.Notifications) - 1; i >= 0; i-- {
		if err := insertNotification(ctx, tx, &snap.Notifications[i]); err != nil {
			return err
		}
	}
	for i := len(snap.Announcements) - 1; i >= 0; i-- {
		if err := insertAnnouncement(ctx, tx, &snap.Announcements[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

// SavePlace inserts a new place.
func (r *Repository) SavePlace(ctx context.Context, place *entities.Place) error {
	return insertPlace(ctx, r.db, place)
}

// SaveRequest inserts or updates an edit request.
func (r *Repository) SaveRequest(ctx context.Context, req *entities.EditRequest) error {
	return upsertRequest(ctx, r.db, req)
}

// SaveReview inserts a review.
func (r *Repository) SaveReview(ctx context.Context, review *entities.Review) error {
	return insertReview(ctx, r.db, review)
}

// SaveAnnouncement inserts an announcement.
func (r *Repository) SaveAnnouncement(ctx context.Context, ann *entities.Announcement) error {
	return insertAnnouncement(ctx, r.db, ann)
}

// ApplyDecision writes the decided request, its notification and, for
// approvals, the constraint upsert and version in one transaction.
func (r *Repository) ApplyDecision(ctx context.Context, d *ports.Decision) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertRequest(ctx, tx, &d.Request); err != nil {
		return err
	}
	if err := insertNotification(ctx, tx, &d.Notification); err != nil {
		return err
	}
	if d.Constraint != nil {
		if err := upsertConstraint(ctx, tx, d.Constraint); err != nil {
			return err
		}
	}
	if d.Version != nil {
		if err := insertVersion(ctx, tx, d.Version); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing decision: %w", err)
	}
	return nil
}

// MarkNotificationRead flags a notification as read.
func (r *Repository) MarkNotificationRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("notification %s not found", id)
	}
	return nil
}

func insertPlace(ctx context.Context, db execer, p *entities.Place) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO places (id, name, address, place_type, lat, lng, formatted_address, map_provider_pref)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID,
		p.Name,
		p.Address,
		string(p.Type),
		nullFloat(p.Lat),
		nullFloat(p.Lng),
		p.FormattedAddress,
		string(p.MapProviderPref),
	)
	if err != nil {
		return fmt.Errorf("saving place: %w", err)
	}
	return nil
}

func upsertConstraint(ctx context.Context, db execer, c *entities.Constraint) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO constraints (id, place_id, field_key, label, value, unit, status, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(place_id, field_key) DO UPDATE SET
			value = excluded.value,
			status = excluded.status,
			updated_at = excluded.updated_at
	`,
		c.ID,
		c.PlaceID,
		c.FieldKey,
		c.Label,
		c.Value,
		c.Unit,
		string(c.Status),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving constraint: %w", err)
	}
	return nil
}

func upsertRequest(ctx context.Context, db execer, req *entities.EditRequest) error {
	evidence, err := encodeList(req.EvidenceFiles)
	if err != nil {
		return err
	}
	var decidedAt sql.NullString
	if req.DecidedAt != nil {
		decidedAt = sql.NullString{String: formatTime(*req.DecidedAt), Valid: true}
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO edit_requests (
			id, place_id, constraint_id, field_key, field_label, current_value, requested_value,
			requested_by, requested_by_name, requested_by_role, status, evidence_files, note,
			reviewer_id, reviewer_note, created_at, decided_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			reviewer_id = excluded.reviewer_id,
			reviewer_note = excluded.reviewer_note,
			decided_at = excluded.decided_at
	`,
		req.ID,
		req.PlaceID,
		req.ConstraintID,
		req.FieldKey,
		req.FieldLabel,
		req.CurrentValue,
		req.RequestedValue,
		req.RequestedBy,
		req.RequestedByName,
		string(req.RequestedByRole),
		string(req.Status),
		evidence,
		req.Note,
		req.ReviewerID,
		req.ReviewerNote,
		formatTime(req.CreatedAt),
		decidedAt,
	)
	if err != nil {
		return fmt.Errorf("saving edit request: %w", err)
	}
	return nil
}

func insertReview(ctx context.Context, db execer, review *entities.Review) error {
	tags, err := encodeList(review.Tags)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO reviews (id, place_id, user_id, user_name, rating, tip_text, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		review.ID,
		review.PlaceID,
		review.UserID,
		review.UserName,
		review.Rating,
		review.TipText,
		tags,
		formatTime(review.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving review: %w", err)
	}
	return nil
}

func insertVersion(ctx context.Context, db execer, v *entities.PlaceVersion) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO place_versions (id, place_id, source_request_id, field_key, label, old_value, new_value, approved_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		v.ID,
		v.PlaceID,
		v.SourceRequestID,
		v.FieldKey,
		v.Label,
		v.OldValue,
		v.NewValue,
		v.ApprovedBy,
		formatTime(v.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving place version: %w", err)
	}
	return nil
}

func insertNotification(ctx context.Context, db execer, n *entities.Notification) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, type, message, link, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		n.ID,
		n.UserID,
		string(n.Type),
		n.Message,
		n.Link,
		n.IsRead,
		formatTime(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving notification: %w", err)
	}
	return nil
}

func insertAnnouncement(ctx context.Context, db execer, a *entities.Announcement) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO announcements (id, place_id, title, content, created_by, created_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		a.ID,
		a.PlaceID,
		a.Title,
		a.Content,
		a.CreatedBy,
		formatTime(a.CreatedAt),
		a.IsActive,
	)
	if err != nil {
		return fmt.Errorf("saving announcement: %w", err)
	}
	return nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
