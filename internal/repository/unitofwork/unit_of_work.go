package unitofwork

import (
	"context"

	"ai-studybuddy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	DocumentRepository() contract.DocumentRepository
	ChunkRepository() contract.ChunkRepository
	QuizRepository() contract.QuizRepository
	SubscriptionRepository() contract.SubscriptionRepository
}
