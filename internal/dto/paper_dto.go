package dto

import "github.com/google/uuid"

type GeneratePaperRequest struct {
	SessionId uuid.UUID `validate:"required"`
	Subject   string
	// Reference is an optional past exam paper. When present its structure
	// drives the generated paper instead of a structure inferred from the
	// session material.
	Reference *UploadedFile
}

type PaperSection struct {
	Title        string   `json:"title"`
	Instructions string   `json:"instructions,omitempty"`
	Marks        int      `json:"marks"`
	Questions    []string `json:"questions"`
}

type PaperPattern struct {
	ExamName     string         `json:"exam_name"`
	DurationMins int            `json:"duration_mins"`
	TotalMarks   int            `json:"total_marks"`
	Sections     []PaperSection `json:"sections"`
}

// PaperOutlineSection is one section of the analyzed exam structure, before
// any questions are generated for it.
type PaperOutlineSection struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions,omitempty"`
	Marks        int    `json:"marks"`
	Count        int    `json:"count"`
}

type PaperOutline struct {
	ExamName     string                `json:"exam_name"`
	DurationMins int                   `json:"duration_mins"`
	TotalMarks   int                   `json:"total_marks"`
	Sections     []PaperOutlineSection `json:"sections"`
}

type GeneratePaperResponse struct {
	Paper           PaperPattern `json:"paper"`
	OriginalPattern PaperOutline `json:"original_pattern"`
}

type DownloadPaperRequest struct {
	Paper PaperPattern `json:"paper" validate:"required"`
}
