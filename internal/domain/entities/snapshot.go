package entities

import "time"

// Snapshot holds every collection the engine works on.
// New requests, reviews, versions, notifications and announcements are
// prepended; places and constraints keep insertion order.
type Snapshot struct {
	Places        []Place        `json:"places"`
	Constraints   []Constraint   `json:"constraints"`
	Requests      []EditRequest  `json:"requests"`
	Reviews       []Review       `json:"reviews"`
	Versions      []PlaceVersion `json:"versions"`
	Notifications []Notification `json:"notifications"`
	Announcements []Announcement `json:"announcements"`
}

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in UTC ISO-8601 with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
