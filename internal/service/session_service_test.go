package service

import (
	"context"
	"testing"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/contract"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface-embedding stubs: only the methods a test exercises are
// implemented, anything else panics loudly.

type stubSessionRepo struct {
	contract.SessionRepository
	created []*entity.StudySession
	deleted []uuid.UUID
}

func (r *stubSessionRepo) Create(ctx context.Context, session *entity.StudySession) error {
	r.created = append(r.created, session)
	return nil
}

func (r *stubSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type stubChunkRepo struct {
	contract.ChunkRepository
	deletedChunks int64
	retrieved     []*entity.RetrievedChunk
}

func (r *stubChunkRepo) DeleteBySessionIdUnscoped(ctx context.Context, sessionId uuid.UUID) (int64, error) {
	return r.deletedChunks, nil
}

func (r *stubChunkRepo) SearchNearest(ctx context.Context, sessionId uuid.UUID, embedding []float32, limit int, sourceFilter string) ([]*entity.RetrievedChunk, error) {
	return r.retrieved, nil
}

type stubDocumentRepo struct {
	contract.DocumentRepository
}

func (r *stubDocumentRepo) DeleteBySessionIdUnscoped(ctx context.Context, sessionId uuid.UUID) error {
	return nil
}

type stubSubscriptionRepo struct {
	contract.SubscriptionRepository
	subs    []*entity.UserSubscription
	updated []*entity.UserSubscription
}

func (r *stubSubscriptionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error) {
	return r.subs, nil
}

func (r *stubSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSubscription, error) {
	if len(r.subs) == 0 {
		return nil, nil
	}
	return r.subs[0], nil
}

func (r *stubSubscriptionRepo) Update(ctx context.Context, sub *entity.UserSubscription) error {
	r.updated = append(r.updated, sub)
	return nil
}

type stubUow struct {
	unitofwork.UnitOfWork
	sessions *stubSessionRepo
	chunks   *stubChunkRepo
	docs     *stubDocumentRepo
	subs     *stubSubscriptionRepo
}

func (u *stubUow) Begin(ctx context.Context) error { return nil }
func (u *stubUow) Commit() error                   { return nil }
func (u *stubUow) Rollback() error                 { return nil }

func (u *stubUow) SessionRepository() contract.SessionRepository {
	return u.sessions
}

func (u *stubUow) ChunkRepository() contract.ChunkRepository {
	return u.chunks
}

func (u *stubUow) DocumentRepository() contract.DocumentRepository {
	return u.docs
}

func (u *stubUow) SubscriptionRepository() contract.SubscriptionRepository {
	return u.subs
}

type stubUowFactory struct {
	uow *stubUow
}

func (f *stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func TestSessionCreatePublishesEvent(t *testing.T) {
	sessions := &stubSessionRepo{}
	publisher := &capturingPublisher{}
	svc := NewSessionService(&stubUowFactory{uow: &stubUow{sessions: sessions}}, publisher, nil, nil)

	res, err := svc.Create(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions.created, 1)

	require.Len(t, publisher.published, 1)
	evt := publisher.published[0]
	assert.Equal(t, constant.EventSessionCreated, evt.EventType())
	assert.Equal(t, res.SessionId, evt.Payload()["session_id"])
}

func TestSessionCreateWithoutPublisher(t *testing.T) {
	svc := NewSessionService(&stubUowFactory{uow: &stubUow{sessions: &stubSessionRepo{}}}, nil, nil, nil)

	_, err := svc.Create(context.Background())
	require.NoError(t, err)
}

func TestSessionDeletePublishesEvent(t *testing.T) {
	uow := &stubUow{
		sessions: &stubSessionRepo{},
		chunks:   &stubChunkRepo{deletedChunks: 7},
		docs:     &stubDocumentRepo{},
	}
	publisher := &capturingPublisher{}
	svc := NewSessionService(&stubUowFactory{uow: uow}, publisher, nil, nil)

	sessionId := uuid.New()
	res, err := svc.Delete(context.Background(), sessionId)
	require.NoError(t, err)
	assert.EqualValues(t, 7, res.DeletedChunks)
	assert.Equal(t, []uuid.UUID{sessionId}, uow.sessions.deleted)

	require.Len(t, publisher.published, 1)
	evt := publisher.published[0]
	assert.Equal(t, constant.EventSessionDeleted, evt.EventType())
	assert.Equal(t, sessionId, evt.Payload()["session_id"])
	assert.EqualValues(t, 7, evt.Payload()["deleted_chunks"])
}
