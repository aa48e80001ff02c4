package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/logitrust/internal/domain/services"
)

// SearchHandler handles semantic place search and indexing.
type SearchHandler struct {
	search *services.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// SearchResult contains the result of a semantic search.
type SearchResult struct {
	Query string               `json:"query"`
	Hits  []services.SearchHit `json:"hits"`
}

// Handle searches places by meaning.
func (h *SearchHandler) Handle(ctx context.Context, query string, limit int) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required: %w", ErrInvalidInput)
	}

	hits, err := h.search.SemanticSearch(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching places: %w", err)
	}

	return &SearchResult{Query: query, Hits: hits}, nil
}

// Index embeds every place into the search index and returns the count.
func (h *SearchHandler) Index(ctx context.Context) (int, error) {
	n, err := h.search.Reindex(ctx)
	if err != nil {
		return 0, fmt.Errorf("indexing places: %w", err)
	}
	return n, nil
}
