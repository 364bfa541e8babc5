package service

import (
	"context"
	"fmt"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/pkg/llm"

	"github.com/google/uuid"
)

type IChatService interface {
	// Chat answers a question grounded in the session's indexed material.
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)

	// TeacherChat gives a tutor-style spoken explanation in the requested
	// language. Used by the audio interaction flow.
	TeacherChat(ctx context.Context, sessionId uuid.UUID, query string, language string) (*dto.ChatResponse, error)
}

type chatService struct {
	retrievalService IRetrievalService
	llmProvider      llm.LLMProvider
}

func NewChatService(
	retrievalService IRetrievalService,
	llmProvider llm.LLMProvider,
) IChatService {
	return &chatService{
		retrievalService: retrievalService,
		llmProvider:      llmProvider,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	context_, sources, err := s.retrievalService.Retrieve(ctx, req.SessionId, req.Message, 15, "")
	if err != nil {
		return nil, err
	}

	if context_ == "" {
		return &dto.ChatResponse{
			Response: constant.StudyChatNoDocumentsReply,
			Sources:  []dto.ChatSource{},
		}, nil
	}

	history := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(constant.StudyChatSystemPromptTemplate, context_)},
		{Role: "user", Content: req.Message},
	}

	answer, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.3))
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Response: answer,
		Sources:  sources,
	}, nil
}

func (s *chatService) TeacherChat(ctx context.Context, sessionId uuid.UUID, query string, language string) (*dto.ChatResponse, error) {
	if language == "" {
		language = "English"
	}

	context_, sources, err := s.retrievalService.Retrieve(ctx, sessionId, query, 10, "")
	if err != nil {
		return nil, err
	}

	if context_ == "" {
		return &dto.ChatResponse{
			Response: constant.TeacherChatNoDocumentsReply,
			Sources:  []dto.ChatSource{},
		}, nil
	}

	history := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(constant.TeacherChatSystemPromptTemplate, context_, language)},
		{Role: "user", Content: query},
	}

	// Slightly higher temperature for better analogies.
	answer, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.5))
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Response: answer,
		Sources:  sources,
	}, nil
}
