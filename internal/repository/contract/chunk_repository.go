package contract

import (
	"context"

	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	// DeleteBySessionIdUnscoped hard-deletes all chunks of a session and
	// reports how many rows were removed.
	DeleteBySessionIdUnscoped(ctx context.Context, sessionId uuid.UUID) (int64, error)
	// DistinctSources lists the unique upload sources that have at least one
	// stored chunk in the session.
	DistinctSources(ctx context.Context, sessionId uuid.UUID) ([]string, error)
	// SearchNearest ranks session chunks by cosine distance to the query
	// embedding. An empty sourceFilter (or "all") searches every source.
	SearchNearest(ctx context.Context, sessionId uuid.UUID, embedding []float32, limit int, sourceFilter string) ([]*entity.RetrievedChunk, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
