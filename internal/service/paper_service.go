package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/pkg/extract"
	"ai-studybuddy-be/pkg/llm"
	"ai-studybuddy-be/pkg/ooxml"
	"ai-studybuddy-be/pkg/utils"
)

type IPaperService interface {
	// Generate fills an exam structure with questions from the session
	// material. The structure comes from the uploaded reference paper when
	// one is given, otherwise it is designed from the session material
	// itself. Sections that fail to parse are skipped.
	Generate(ctx context.Context, req *dto.GeneratePaperRequest) (*dto.GeneratePaperResponse, error)

	// BuildDocx renders a generated paper as a Word document.
	BuildDocx(paper *dto.PaperPattern) ([]byte, error)
}

type paperService struct {
	retrievalService IRetrievalService
	llmProvider      llm.LLMProvider
}

func NewPaperService(
	retrievalService IRetrievalService,
	llmProvider llm.LLMProvider,
) IPaperService {
	return &paperService{
		retrievalService: retrievalService,
		llmProvider:      llmProvider,
	}
}

// patternSection mirrors the JSON shape the pattern prompt requests.
type patternSection struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	Marks        int    `json:"marks"`
	Count        int    `json:"count"`
}

type paperPattern struct {
	ExamName     string           `json:"exam_name"`
	DurationMins int              `json:"duration_mins"`
	TotalMarks   int              `json:"total_marks"`
	Sections     []patternSection `json:"sections"`
}

func (s *paperService) Generate(ctx context.Context, req *dto.GeneratePaperRequest) (*dto.GeneratePaperResponse, error) {
	query := "Main concepts, key facts, and important information"
	if req.Subject != "" {
		query = fmt.Sprintf("Key concepts and important information about %s", req.Subject)
	}

	context_, _, err := s.retrievalService.Retrieve(ctx, req.SessionId, query, 20, "")
	if err != nil {
		return nil, err
	}
	if context_ == "" {
		return nil, serverutils.BadRequest("No study materials found in session.")
	}

	if len(context_) > 15000 {
		context_ = context_[:15000]
	}

	var pattern *paperPattern
	if req.Reference != nil {
		pattern, err = s.analyzeReference(ctx, req.Reference)
	} else {
		pattern, err = s.analyzePattern(ctx, context_)
	}
	if err != nil {
		return nil, err
	}

	paper := dto.PaperPattern{
		ExamName:     pattern.ExamName,
		DurationMins: pattern.DurationMins,
		TotalMarks:   pattern.TotalMarks,
	}

	for _, section := range pattern.Sections {
		count := section.Count
		if count <= 0 {
			count = 5
		}

		questions, err := s.generateSection(ctx, context_, section, count)
		if err != nil {
			log.Printf("[WARN] Skipping section %q: %v", section.Title, err)
			continue
		}

		paper.Sections = append(paper.Sections, dto.PaperSection{
			Title:        section.Title,
			Instructions: section.Instructions,
			Marks:        section.Marks,
			Questions:    questions,
		})
	}

	if len(paper.Sections) == 0 {
		return nil, serverutils.NewApiError(502, "Failed to generate sample paper. Please try again.")
	}

	return &dto.GeneratePaperResponse{
		Paper:           paper,
		OriginalPattern: pattern.outline(),
	}, nil
}

func (p *paperPattern) outline() dto.PaperOutline {
	out := dto.PaperOutline{
		ExamName:     p.ExamName,
		DurationMins: p.DurationMins,
		TotalMarks:   p.TotalMarks,
	}
	for _, s := range p.Sections {
		out.Sections = append(out.Sections, dto.PaperOutlineSection{
			Title:        s.Title,
			Instructions: s.Instructions,
			Marks:        s.Marks,
			Count:        s.Count,
		})
	}
	return out
}

// analyzeReference extracts the structure of an uploaded past paper.
func (s *paperService) analyzeReference(ctx context.Context, ref *dto.UploadedFile) (*paperPattern, error) {
	text, err := extract.Text(ref.Filename, ref.Content)
	if err != nil {
		return nil, serverutils.BadRequest(fmt.Sprintf("Could not read reference paper: %v", err))
	}
	if len(text) > 10000 {
		text = text[:10000]
	}
	return s.parsePattern(ctx, fmt.Sprintf(constant.PaperReferencePromptTemplate, text))
}

func (s *paperService) analyzePattern(ctx context.Context, context_ string) (*paperPattern, error) {
	return s.parsePattern(ctx, fmt.Sprintf(constant.PaperPatternPromptTemplate, context_))
}

func (s *paperService) parsePattern(ctx context.Context, prompt string) (*paperPattern, error) {
	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return nil, err
	}

	var pattern paperPattern
	if err := json.Unmarshal([]byte(utils.StripJSONFences(raw)), &pattern); err != nil {
		return nil, serverutils.NewApiError(502, "Failed to analyze exam pattern. Please try again.")
	}
	return &pattern, nil
}

func (s *paperService) generateSection(ctx context.Context, context_ string, section patternSection, count int) ([]string, error) {
	prompt := fmt.Sprintf(constant.PaperSectionPromptTemplate, context_, section.Title, count, section.Instructions)

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		return nil, err
	}

	var questions []string
	if err := json.Unmarshal([]byte(utils.StripJSONFences(raw)), &questions); err != nil {
		return nil, fmt.Errorf("parse section questions: %w", err)
	}
	return questions, nil
}

func (s *paperService) BuildDocx(paper *dto.PaperPattern) ([]byte, error) {
	b := ooxml.NewDocxBuilder()

	title := paper.ExamName
	if title == "" {
		title = "Sample Paper"
	}
	b.AddHeading(title)

	meta := fmt.Sprintf("Duration: %d minutes    Total Marks: %d", paper.DurationMins, paper.TotalMarks)
	b.AddParagraph(meta)

	num := 1
	for _, section := range paper.Sections {
		b.AddSubheading(fmt.Sprintf("%s (%d marks)", section.Title, section.Marks))
		if section.Instructions != "" {
			b.AddParagraph(section.Instructions)
		}
		for _, q := range section.Questions {
			b.AddParagraph(fmt.Sprintf("Q%d. %s", num, q))
			num++
		}
	}

	return b.Bytes()
}
