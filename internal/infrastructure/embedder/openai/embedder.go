// Package openai provides an Embedder implementation using OpenAI.
package openai

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/logitrust/internal/infrastructure/config"
)

// VectorSize is the dimension of text-embedding-3-small vectors.
const VectorSize = 1536

// maxBatchSize bounds the number of inputs sent in one embeddings call.
const maxBatchSize = 100

// Embedder turns place documents and search queries into vectors.
type Embedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewEmbedder creates a new OpenAI embedder.
func NewEmbedder(cfg config.EmbedderConfig) (*Embedder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	model := openai.SmallEmbedding3
	if cfg.Model != "" {
		model = openai.EmbeddingModel(cfg.Model)
	}

	return &Embedder{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
	}, nil
}

// Embed generates a vector embedding for a search query.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, errors.New("no embeddings returned")
	}
	return embeddings[0], nil
}

// EmbedBatch generates vector embeddings for texts, preserving input order.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	embeddings := make([][]float32, 0, len(texts))
	for _, chunk := range chunkTexts(texts, maxBatchSize) {
		resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: e.model,
			Input: chunk,
		})
		if err != nil {
			return nil, fmt.Errorf("creating embeddings: %w", err)
		}
		if len(resp.Data) != len(chunk) {
			return nil, fmt.Errorf("expected %d embeddings, got %d", len(chunk), len(resp.Data))
		}
		embeddings = append(embeddings, orderedVectors(resp.Data)...)
	}

	return embeddings, nil
}

// chunkTexts splits texts into consecutive slices of at most size items.
func chunkTexts(texts []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(texts); start += size {
		end := min(start+size, len(texts))
		chunks = append(chunks, texts[start:end])
	}
	return chunks
}

// orderedVectors returns the embeddings sorted by their input index.
func orderedVectors(data []openai.Embedding) [][]float32 {
	sorted := make([]openai.Embedding, len(data))
	copy(sorted, data)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	vectors := make([][]float32, len(sorted))
	for i, d := range sorted {
		vectors[i] = d.Embedding
	}
	return vectors
}
