package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string
type DocumentKind string

const (
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusReady      DocumentStatus = "ready"
	DocumentStatusFailed     DocumentStatus = "failed"

	DocumentKindFile    DocumentKind = "file"
	DocumentKindYoutube DocumentKind = "youtube"
)

type Document struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Source    string
	Kind      DocumentKind
	Status    DocumentStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type DocumentChunk struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	SessionId  uuid.UUID
	Source     string
	Content    string
	Embedding  []float32
	ChunkIndex int
	CreatedAt  time.Time
}

// RetrievedChunk is a chunk scored against a query embedding.
type RetrievedChunk struct {
	Chunk    DocumentChunk
	Distance float64
}
