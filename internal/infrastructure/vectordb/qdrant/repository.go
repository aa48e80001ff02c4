// Package qdrant provides a PlaceIndex implementation using Qdrant.
package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/ersonp/logitrust/internal/domain/ports"
	"github.com/ersonp/logitrust/internal/infrastructure/config"
)

// Repository implements ports.PlaceIndex using Qdrant.
type Repository struct {
	client     pb.CollectionsClient
	points     pb.PointsClient
	collection string
	conn       *grpc.ClientConn
}

// NewRepository creates a new Qdrant repository.
func NewRepository(cfg config.QdrantConfig) (*Repository, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if cfg.APIKey != "" {
		opts = append(opts, grpc.WithUnaryInterceptor(apiKeyInterceptor(cfg.APIKey)))
	}

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &Repository{
		client:     pb.NewCollectionsClient(conn),
		points:     pb.NewPointsClient(conn),
		collection: cfg.Collection,
		conn:       conn,
	}, nil
}

// apiKeyInterceptor attaches the Qdrant Cloud api-key header to every call.
func apiKeyInterceptor(apiKey string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "api-key", apiKey)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// Close closes the gRPC connection.
func (r *Repository) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// EnsureCollection creates the collection if it doesn't exist.
func (r *Repository) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	_, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err == nil {
		return nil
	}

	_, err = r.client.Create(ctx, &pb.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	return nil
}

// DeleteCollection removes the collection and all its points.
func (r *Repository) DeleteCollection(ctx context.Context) error {
	_, err := r.client.Delete(ctx, &pb.DeleteCollection{
		CollectionName: r.collection,
	})
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// Upsert stores or replaces place documents. Re-indexing a place
// overwrites its previous point.
func (r *Repository) Upsert(ctx context.Context, places []ports.IndexedPlace) error {
	if len(places) == 0 {
		return nil
	}

	points := make([]*pb.PointStruct, 0, len(places))
	for _, p := range places {
		points = append(points, toPoint(p))
	}

	_, err := r.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: r.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upserting points: %w", err)
	}

	return nil
}

// Search returns the places closest to embedding.
func (r *Repository) Search(ctx context.Context, embedding []float32, limit int) ([]ports.PlaceMatch, error) {
	resp, err := r.points.Search(ctx, &pb.SearchPoints{
		CollectionName: r.collection,
		Vector:         embedding,
		Limit:          uint64(limit),
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("searching points: %w", err)
	}

	return scoredPointsToMatches(resp.Result), nil
}

// PointID maps a place ID to its stable Qdrant point UUID.
func PointID(placeID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("logitrust:place:"+placeID)).String()
}

func toPoint(p ports.IndexedPlace) *pb.PointStruct {
	return &pb.PointStruct{
		Id: &pb.PointId{
			PointIdOptions: &pb.PointId_Uuid{
				Uuid: PointID(p.PlaceID),
			},
		},
		Vectors: &pb.Vectors{
			VectorsOptions: &pb.Vectors_Vector{
				Vector: &pb.Vector{
					Data: p.Embedding,
				},
			},
		},
		Payload: map[string]*pb.Value{
			"place_id": {Kind: &pb.Value_StringValue{StringValue: p.PlaceID}},
			"name":     {Kind: &pb.Value_StringValue{StringValue: p.Name}},
			"address":  {Kind: &pb.Value_StringValue{StringValue: p.Address}},
			"text":     {Kind: &pb.Value_StringValue{StringValue: p.Text}},
		},
	}
}

// scoredPointsToMatches converts scored points to place matches, skipping
// points without a place_id payload.
func scoredPointsToMatches(points []*pb.ScoredPoint) []ports.PlaceMatch {
	matches := make([]ports.PlaceMatch, 0, len(points))
	for _, point := range points {
		placeID := getStringValue(point.Payload, "place_id")
		if placeID == "" {
			continue
		}
		matches = append(matches, ports.PlaceMatch{PlaceID: placeID, Score: point.Score})
	}
	return matches
}

func getStringValue(payload map[string]*pb.Value, key string) string {
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}
