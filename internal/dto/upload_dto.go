package dto

import "github.com/google/uuid"

// UploadedFile carries one multipart file already read off the wire.
type UploadedFile struct {
	Filename string
	Content  []byte
}

type UploadRequest struct {
	SessionId  uuid.UUID
	Files      []UploadedFile
	YoutubeURL string
}

type UploadResponse struct {
	Status        string   `json:"status"`
	Message       string   `json:"message"`
	FilesReceived []string `json:"files_received"`
	YoutubeURL    string   `json:"youtube_url,omitempty"`
}

type DocumentListResponse struct {
	Documents []string `json:"documents"`
}

// ProcessDocumentMessage is the ingest job payload published to the worker.
type ProcessDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
	// Raw file bytes ride along so the worker does not need shared storage.
	Content []byte `json:"content,omitempty"`
}
