package entities

import "time"

// Review is a driver's rating and tip for a place. Reviews are append-only.
type Review struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"` // 1-5
	TipText   string    `json:"tip_text"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}
