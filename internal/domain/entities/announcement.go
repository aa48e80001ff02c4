package entities

import "time"

// Announcement is a dispatcher notice attached to a place.
type Announcement struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}
