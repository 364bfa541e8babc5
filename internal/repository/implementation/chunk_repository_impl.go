package implementation

import (
	"context"

	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/mapper"
	"ai-studybuddy-be/internal/model"
	"ai-studybuddy-be/internal/repository/contract"
	"ai-studybuddy-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkMapper
}

func NewChunkRepository(db *gorm.DB) contract.ChunkRepository {
	return &ChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkMapper(),
	}
}

func (r *ChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	models := r.mapper.ToModels(chunks)
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return err
	}

	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ChunkRepositoryImpl) DeleteBySessionIdUnscoped(ctx context.Context, sessionId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("session_id = ?", sessionId).Delete(&model.DocumentChunk{})
	return result.RowsAffected, result.Error
}

func (r *ChunkRepositoryImpl) DistinctSources(ctx context.Context, sessionId uuid.UUID) ([]string, error) {
	var sources []string
	err := r.db.WithContext(ctx).
		Model(&model.DocumentChunk{}).
		Distinct("source").
		Where("session_id = ?", sessionId).
		Order("source").
		Pluck("source", &sources).Error
	if err != nil {
		return nil, err
	}
	return sources, nil
}

func (r *ChunkRepositoryImpl) SearchNearest(ctx context.Context, sessionId uuid.UUID, embedding []float32, limit int, sourceFilter string) ([]*entity.RetrievedChunk, error) {
	if limit <= 0 {
		limit = 15
	}

	type result struct {
		model.DocumentChunk
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	// Cosine distance via pgvector: embedding_value <=> query_vector.
	query := r.db.WithContext(ctx).
		Table("document_chunks").
		Select("document_chunks.*, embedding_value <=> ? as distance", queryVector).
		Where("session_id = ?", sessionId)

	if sourceFilter != "" && sourceFilter != "all" {
		query = query.Where("source = ?", sourceFilter)
	}

	err := query.
		Order("distance ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	retrieved := make([]*entity.RetrievedChunk, len(results))
	for i, res := range results {
		retrieved[i] = &entity.RetrievedChunk{
			Chunk:    *r.mapper.ToEntity(&res.DocumentChunk),
			Distance: res.Distance,
		}
	}
	return retrieved, nil
}

func (r *ChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error) {
	var models []*model.DocumentChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DocumentChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
