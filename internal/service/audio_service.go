package service

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/pkg/speech"
)

type IAudioService interface {
	// Interact runs one voice-tutor turn: transcribe (or take typed text),
	// get a teacher-style answer, then synthesize it. A failed synthesis
	// degrades to a text-only reply instead of failing the turn.
	Interact(ctx context.Context, req *dto.AudioInteractRequest) (*dto.AudioInteractResponse, error)
}

type audioService struct {
	chatService IChatService
	transcriber speech.Transcriber
	synthesizer speech.Synthesizer
}

func NewAudioService(
	chatService IChatService,
	transcriber speech.Transcriber,
	synthesizer speech.Synthesizer,
) IAudioService {
	return &audioService{
		chatService: chatService,
		transcriber: transcriber,
		synthesizer: synthesizer,
	}
}

func (s *audioService) Interact(ctx context.Context, req *dto.AudioInteractRequest) (*dto.AudioInteractResponse, error) {
	userText := strings.TrimSpace(req.Text)

	if userText == "" {
		if len(req.Audio) == 0 {
			return nil, serverutils.BadRequest("provide either audio or text")
		}
		if s.transcriber == nil {
			return nil, serverutils.NewApiError(503, "speech recognition is not configured")
		}

		transcribed, err := s.transcriber.Transcribe(ctx, req.Audio, req.AudioFilename)
		if err != nil {
			return nil, err
		}
		userText = strings.TrimSpace(transcribed)
		if userText == "" {
			return nil, serverutils.BadRequest("could not understand the audio")
		}
	}

	reply, err := s.chatService.TeacherChat(ctx, req.SessionId, userText, req.Language)
	if err != nil {
		return nil, err
	}

	res := &dto.AudioInteractResponse{
		UserText: userText,
		AiText:   reply.Response,
		Sources:  reply.Sources,
	}

	if s.synthesizer != nil {
		audio, err := s.synthesizer.Synthesize(ctx, reply.Response)
		if err != nil {
			log.Printf("[WARN] TTS failed, returning text-only reply: %v", err)
		} else {
			res.AudioBase64 = base64.StdEncoding.EncodeToString(audio)
		}
	}

	return res, nil
}
