package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
)

// DefaultSearchLimit is the default number of semantic results to return.
const DefaultSearchLimit = 10

// SearchHit is a place matched by semantic search.
type SearchHit struct {
	Place      entities.Place `json:"place"`
	Similarity float32        `json:"similarity"`
}

// SearchService finds places by text or by meaning.
type SearchService struct {
	site     *SiteService
	embedder ports.Embedder
	index    ports.PlaceIndex
}

// NewSearchService creates a new search service. embedder and index may be
// nil when only text search is used.
func NewSearchService(site *SiteService, embedder ports.Embedder, index ports.PlaceIndex) *SearchService {
	return &SearchService{
		site:     site,
		embedder: embedder,
		index:    index,
	}
}

// Search returns places whose name or address contains query, ignoring case.
func (s *SearchService) Search(query string) []entities.Place {
	var out []entities.Place
	for _, p := range s.site.Places() {
		if p.Matches(query) {
			out = append(out, p)
		}
	}
	return out
}

// placeText is the document embedded for a place.
func placeText(p entities.Place, fields []ports.ConstraintView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s / %s / %s", p.Name, p.Address, p.Type)
	for _, f := range fields {
		fmt.Fprintf(&b, " / %s: %s%s", f.Label, f.Value, f.Unit)
	}
	return b.String()
}

// Reindex embeds every place and stores it in the place index.
// It returns the number of places indexed.
func (s *SearchService) Reindex(ctx context.Context) (int, error) {
	if s.embedder == nil || s.index == nil {
		return 0, ErrSearchUnavailable
	}

	places := s.site.Places()
	if len(places) == 0 {
		return 0, nil
	}

	texts := make([]string, len(places))
	for i, p := range places {
		texts[i] = placeText(p, s.site.FieldStatuses(p.ID))
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("generating embeddings: %w", err)
	}
	if len(embeddings) != len(places) {
		return 0, fmt.Errorf("expected %d embeddings, got %d", len(places), len(embeddings))
	}

	if err := s.index.EnsureCollection(ctx, uint64(len(embeddings[0]))); err != nil {
		return 0, fmt.Errorf("ensuring collection: %w", err)
	}

	docs := make([]ports.IndexedPlace, len(places))
	for i, p := range places {
		docs[i] = ports.IndexedPlace{
			PlaceID:   p.ID,
			Name:      p.Name,
			Address:   p.Address,
			Text:      texts[i],
			Embedding: embeddings[i],
		}
	}
	if err := s.index.Upsert(ctx, docs); err != nil {
		return 0, fmt.Errorf("indexing places: %w", err)
	}
	return len(docs), nil
}

// SemanticSearch returns places similar in meaning to query, best first.
// Indexed places that no longer exist are skipped.
func (s *SearchService) SemanticSearch(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	if s.embedder == nil || s.index == nil {
		return nil, ErrSearchUnavailable
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("generating query embedding: %w", err)
	}

	matches, err := s.index.Search(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("searching places: %w", err)
	}

	hits := make([]SearchHit, 0, len(matches))
	for _, m := range matches {
		p, err := s.site.Place(m.PlaceID)
		if err != nil {
			continue
		}
		hits = append(hits, SearchHit{Place: p, Similarity: m.Score})
	}
	return hits, nil
}
