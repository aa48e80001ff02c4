package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

func (r *Repository) loadPlaces(ctx context.Context) ([]entities.Place, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, place_type, lat, lng, formatted_address, map_provider_pref
		FROM places
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying places: %w", err)
	}
	defer rows.Close()

	var result []entities.Place
	for rows.Next() {
		var p entities.Place
		var placeType, mapPref string
		var lat, lng sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &placeType, &lat, &lng, &p.FormattedAddress, &mapPref); err != nil {
			return nil, fmt.Errorf("scanning place: %w", err)
		}
		p.Type = entities.PlaceType(placeType)
		p.MapProviderPref = entities.MapProvider(mapPref)
		if lat.Valid {
			p.Lat = &lat.Float64
		}
		if lng.Valid {
			p.Lng = &lng.Float64
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *Repository) loadConstraints(ctx context.Context) ([]entities.Constraint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, place_id, field_key, label, value, unit, status, updated_at
		FROM constraints
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying constraints: %w", err)
	}
	defer rows.Close()

	var result []entities.Constraint
	for rows.Next() {
		var c entities.Constraint
		var status, updatedAt string
		if err := rows.Scan(&c.ID, &c.PlaceID, &c.FieldKey, &c.Label, &c.Value, &c.Unit, &status, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning constraint: %w", err)
		}
		c.Status = entities.ConstraintStatus(status)
		if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *Repository) loadRequests(ctx context.Context) ([]entities.EditRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, place_id, constraint_id, field_key, field_label, current_value, requested_value,
			requested_by, requested_by_name, requested_by_role, status, evidence_files, note,
			reviewer_id, reviewer_note, created_at, decided_at
		FROM edit_requests
		ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying edit requests: %w", err)
	}
	defer rows.Close()

	var result []entities.EditRequest
	for rows.Next() {
		var req entities.EditRequest
		var role, status, evidence, createdAt string
		var decidedAt sql.NullString
		if err := rows.Scan(
			&req.ID,
			&req.PlaceID,
			&req.ConstraintID,
			&req.FieldKey,
			&req.FieldLabel,
			&req.CurrentValue,
			&req.RequestedValue,
			&req.RequestedBy,
			&req.RequestedByName,
			&role,
			&status,
			&evidence,
			&req.Note,
			&req.ReviewerID,
			&req.ReviewerNote,
			&createdAt,
			&decidedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning edit request: %w", err)
		}
		req.RequestedByRole = entities.Role(role)
		req.Status = entities.RequestStatus(status)
		if req.EvidenceFiles, err = decodeList(evidence); err != nil {
			return nil, err
		}
		if req.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if decidedAt.Valid {
			t, err := parseTime(decidedAt.String)
			if err != nil {
				return nil, err
			}
			req.DecidedAt = &t
		}
		result = append(result, req)
	}
	return result, rows.Err()
}

func (r *Repository) loadReviews(ctx context.Context) ([]entities.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, place_id, user_id, user_name, rating, tip_text, tags, created_at
		FROM reviews
		ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var result []entities.Review
	for rows.Next() {
		var rv entities.Review
		var tags, createdAt string
		if err := rows.Scan(&rv.ID, &rv.PlaceID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.TipText, &tags, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		if rv.Tags, err = decodeList(tags); err != nil {
			return nil, err
		}
		if rv.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	return result, rows.Err()
}

func (r *Repository) loadVersions(ctx context.Context) ([]entities.PlaceVersion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, place_id, source_request_id, field_key, label, old_value, new_value, approved_by, created_at
		FROM place_versions
		ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying place versions: %w", err)
	}
	defer rows.Close()

	var result []entities.PlaceVersion
	for rows.Next() {
		var v entities.PlaceVersion
		var createdAt string
		if err := rows.Scan(&v.ID, &v.PlaceID, &v.SourceRequestID, &v.FieldKey, &v.Label, &v.OldValue, &v.NewValue, &v.ApprovedBy, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning place version: %w", err)
		}
		if v.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *Repository) loadNotifications(ctx context.Context) ([]entities.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, type, message, link, is_read, created_at
		FROM notifications
		ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var result []entities.Notification
	for rows.Next() {
		var n entities.Notification
		var notifType, createdAt string
		if err := rows.Scan(&n.ID, &n.UserID, &notifType, &n.Message, &n.Link, &n.IsRead, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		n.Type = entities.NotificationType(notifType)
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}

func (r *Repository) loadAnnouncements(ctx context.Context) ([]entities.Announcement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, place_id, title, content, created_by, created_at, is_active
		FROM announcements
		ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying announcements: %w", err)
	}
	defer rows.Close()

	var result []entities.Announcement
	for rows.Next() {
		var a entities.Announcement
		var createdAt string
		if err := rows.Scan(&a.ID, &a.PlaceID, &a.Title, &a.Content, &a.CreatedBy, &createdAt, &a.IsActive); err != nil {
			return nil, fmt.Errorf("scanning announcement: %w", err)
		}
		if a.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
