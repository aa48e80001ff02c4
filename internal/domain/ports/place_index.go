package ports

import "context"

// IndexedPlace is one place document in the vector index.
type IndexedPlace struct {
	PlaceID   string
	Name      string
	Address   string
	Text      string
	Embedding []float32
}

// PlaceMatch is a semantic search hit.
type PlaceMatch struct {
	PlaceID string  `json:"place_id"`
	Score   float32 `json:"score"`
}

// PlaceIndex stores place embeddings for similarity search.
type PlaceIndex interface {
	// EnsureCollection creates the collection if it doesn't exist.
	EnsureCollection(ctx context.Context, vectorSize uint64) error

	// DeleteCollection removes the collection and all its data.
	DeleteCollection(ctx context.Context) error

	// Upsert stores or replaces place documents.
	Upsert(ctx context.Context, places []IndexedPlace) error

	// Search returns the places closest to embedding, best first.
	Search(ctx context.Context, embedding []float32, limit int) ([]PlaceMatch, error)
}
