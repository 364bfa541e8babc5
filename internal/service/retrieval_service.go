package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/pkg/embedding"

	"github.com/google/uuid"
)

// pageMarkerPattern matches the page markers the ingest pipeline embeds into
// chunk text so answers can cite page numbers.
var pageMarkerPattern = regexp.MustCompile(`\[Page (\d+) of (\d+)\]`)

type IRetrievalService interface {
	// Retrieve embeds the query, ranks session chunks by cosine distance and
	// returns the concatenated context plus deduplicated source citations.
	Retrieve(ctx context.Context, sessionId uuid.UUID, query string, k int, sourceFilter string) (string, []dto.ChatSource, error)

	// QuizContext gathers session context for quiz generation and derives
	// how many questions the material can support. An empty or "general"
	// topic pulls broad context across the whole session.
	QuizContext(ctx context.Context, sessionId uuid.UUID, topic string) (string, int, error)
}

type retrievalService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewRetrievalService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IRetrievalService {
	return &retrievalService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (s *retrievalService) Retrieve(ctx context.Context, sessionId uuid.UUID, query string, k int, sourceFilter string) (string, []dto.ChatSource, error) {
	res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return "", nil, fmt.Errorf("embed query: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	retrieved, err := uow.ChunkRepository().SearchNearest(ctx, sessionId, res.Embedding.Values, k, sourceFilter)
	if err != nil {
		return "", nil, err
	}
	if len(retrieved) == 0 {
		return "", nil, nil
	}

	var parts []string
	var sources []dto.ChatSource
	seen := make(map[string]bool)

	for _, rc := range retrieved {
		parts = append(parts, rc.Chunk.Content)

		src := dto.ChatSource{Source: rc.Chunk.Source}
		if m := pageMarkerPattern.FindStringSubmatch(rc.Chunk.Content); m != nil {
			src.Page, _ = strconv.Atoi(m[1])
			src.Pages, _ = strconv.Atoi(m[2])
		}

		key := fmt.Sprintf("%s:%d", src.Source, src.Page)
		if !seen[key] {
			seen[key] = true
			sources = append(sources, src)
		}
	}

	return strings.Join(parts, "\n\n"), sources, nil
}

func (s *retrievalService) QuizContext(ctx context.Context, sessionId uuid.UUID, topic string) (string, int, error) {
	query := "Main concepts, key facts, and important information"
	if topic != "" && !strings.EqualFold(topic, "general") {
		query = fmt.Sprintf("Key concepts and important information about %s", topic)
	}

	content, _, err := s.Retrieve(ctx, sessionId, query, 20, "")
	if err != nil {
		return "", 0, err
	}
	if strings.TrimSpace(content) == "" {
		return "", 0, nil
	}

	// Roughly one question per 40 words, clamped to a sane range.
	wordCount := len(strings.Fields(content))
	maxQuestions := wordCount / 40
	if maxQuestions < 5 {
		maxQuestions = 5
	}
	if maxQuestions > 50 {
		maxQuestions = 50
	}

	return content, maxQuestions, nil
}
