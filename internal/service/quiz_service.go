package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/pkg/llm"
	"ai-studybuddy-be/pkg/utils"
)

type IQuizService interface {
	Generate(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	// Analyze scores submitted answers and asks the LLM for a study
	// recommendation over the weak topics.
	Analyze(ctx context.Context, req *dto.AnalyzeQuizRequest) (*dto.AnalyzeQuizResponse, error)
	Summary(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, error)
}

type quizService struct {
	uowFactory       unitofwork.RepositoryFactory
	retrievalService IRetrievalService
	llmProvider      llm.LLMProvider
}

func NewQuizService(
	uowFactory unitofwork.RepositoryFactory,
	retrievalService IRetrievalService,
	llmProvider llm.LLMProvider,
) IQuizService {
	return &quizService{
		uowFactory:       uowFactory,
		retrievalService: retrievalService,
		llmProvider:      llmProvider,
	}
}

func difficultyInstruction(difficulty entity.QuizDifficulty) string {
	switch difficulty {
	case entity.QuizDifficultyEasy:
		return constant.QuizDifficultyInstructionEasy
	case entity.QuizDifficultyHard:
		return constant.QuizDifficultyInstructionHard
	default:
		return constant.QuizDifficultyInstructionMedium
	}
}

// normalizeDifficulty coerces unknown values to medium rather than failing.
func normalizeDifficulty(raw string) entity.QuizDifficulty {
	switch entity.QuizDifficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case entity.QuizDifficultyEasy:
		return entity.QuizDifficultyEasy
	case entity.QuizDifficultyHard:
		return entity.QuizDifficultyHard
	default:
		return entity.QuizDifficultyMedium
	}
}

func (s *quizService) Generate(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	difficulty := normalizeDifficulty(req.Difficulty)

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = 5
	}

	context_, maxPossible, err := s.retrievalService.QuizContext(ctx, req.SessionId, req.Topic)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(context_) == "" {
		return &dto.GenerateQuizResponse{
			Questions: []entity.QuizQuestion{},
			Warning:   "No documents found in your session. Please upload study materials first.",
		}, nil
	}

	actual := numQuestions
	warning := ""
	if numQuestions > maxPossible {
		actual = maxPossible
		warning = fmt.Sprintf("Not enough content to generate %d questions. Generated %d questions based on available content.", numQuestions, actual)
	}

	if len(context_) > 10000 {
		context_ = context_[:10000]
	}

	prompt := fmt.Sprintf(constant.QuizPromptTemplate, context_, actual, difficultyInstruction(difficulty))

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return nil, err
	}

	var questions []entity.QuizQuestion
	if err := json.Unmarshal([]byte(utils.StripJSONFences(raw)), &questions); err != nil {
		return nil, serverutils.NewApiError(502, "Failed to parse quiz. Please try again.")
	}

	record := entity.QuizRecord{
		SessionId:  req.SessionId,
		Difficulty: difficulty,
		Questions:  questions,
		CreatedAt:  time.Now(),
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.QuizRepository().Create(ctx, &record); err != nil {
		return nil, err
	}

	return &dto.GenerateQuizResponse{
		QuizId:    record.Id,
		Questions: questions,
		Warning:   warning,
	}, nil
}

// ScoreResults is the pure part of weak-spot analysis. Exposed for reuse by
// Analyze and by the client-side scorer.
func ScoreResults(results []entity.QuizResult) entity.WeakSpotAnalysis {
	analysis := entity.WeakSpotAnalysis{Total: len(results)}

	seen := make(map[string]bool)
	for _, r := range results {
		correct := r.IsCorrect || (r.SelectedValue != "" && r.SelectedValue == r.CorrectAnswer)
		if correct {
			analysis.Score++
			continue
		}

		topic := r.Topic
		if topic == "" {
			topic = "General"
		}
		if !seen[topic] {
			seen[topic] = true
			analysis.WeakTopics = append(analysis.WeakTopics, topic)
		}
	}

	if analysis.Total > 0 {
		analysis.Percentage = float64(analysis.Score) / float64(analysis.Total) * 100
	}
	return analysis
}

func (s *quizService) Analyze(ctx context.Context, req *dto.AnalyzeQuizRequest) (*dto.AnalyzeQuizResponse, error) {
	analysis := ScoreResults(req.Results)

	recommendation := constant.WeakSpotPerfectRecommendation
	if len(analysis.WeakTopics) > 0 {
		prompt := fmt.Sprintf(constant.WeakSpotPromptTemplate, strings.Join(analysis.WeakTopics, ", "))
		generated, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
		if err != nil {
			// Recommendation is best-effort; fall back to a static hint.
			log.Printf("[WARN] weak-spot recommendation failed: %v", err)
			recommendation = "Focus on reviewing: " + strings.Join(analysis.WeakTopics, ", ")
		} else {
			recommendation = generated
		}
	}

	weakTopics := analysis.WeakTopics
	if weakTopics == nil {
		weakTopics = []string{}
	}

	return &dto.AnalyzeQuizResponse{
		Score:          analysis.Score,
		Total:          analysis.Total,
		Percentage:     analysis.Percentage,
		WeakTopics:     weakTopics,
		Recommendation: recommendation,
	}, nil
}

func (s *quizService) Summary(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, error) {
	summaryType := req.SummaryType
	if summaryType == "" {
		summaryType = "detailed"
	}

	query := constant.SummaryQueryDetailed
	style := constant.SummaryStyleDetailed
	if summaryType == "brief" {
		query = constant.SummaryQueryBrief
		style = constant.SummaryStyleBrief
	}

	if req.SourceFilter != "" && req.SourceFilter != "all" {
		query = fmt.Sprintf("Summarize the content from %s: %s", req.SourceFilter, query)
	}

	context_, _, err := s.retrievalService.Retrieve(ctx, req.SessionId, query, 20, req.SourceFilter)
	if err != nil {
		return nil, err
	}
	if context_ == "" {
		return &dto.SummaryResponse{Summary: constant.SummaryNoDocumentsReply}, nil
	}

	sourceLabel := req.SourceFilter
	if sourceLabel == "" {
		sourceLabel = "All"
	}

	prompt := fmt.Sprintf(constant.SummaryPromptTemplate, sourceLabel, context_, query, style)

	summary, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return nil, err
	}

	return &dto.SummaryResponse{Summary: summary}, nil
}
