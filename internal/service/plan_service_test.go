package service

import (
	"context"
	"testing"
	"time"

	"ai-studybuddy-be/internal/config"
	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanServiceWithSubs(subs ...*entity.UserSubscription) (IPlanService, *stubSubscriptionRepo) {
	repo := &stubSubscriptionRepo{subs: subs}
	factory := &stubUowFactory{uow: &stubUow{subs: repo}}
	return NewPlanService(factory, &config.Config{}, nil), repo
}

func TestPlanStatusFreeUser(t *testing.T) {
	svc, _ := newPlanServiceWithSubs()

	res, err := svc.Status(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "free", res.Plan)
	assert.False(t, res.Entitled)
	assert.Equal(t, constant.ProFeatures(), res.ProFeatures)
}

func TestPlanStatusActivePro(t *testing.T) {
	svc, _ := newPlanServiceWithSubs(&entity.UserSubscription{
		Id:               uuid.New(),
		PlanSlug:         entity.PlanSlugPro,
		Status:           entity.SubscriptionStatusActive,
		CurrentPeriodEnd: time.Now().Add(24 * time.Hour),
	})

	res, err := svc.Status(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "pro", res.Plan)
	assert.Equal(t, "active", res.Status)
	assert.True(t, res.Entitled)
}

func TestPlanStatusCanceledInsidePaidPeriod(t *testing.T) {
	svc, _ := newPlanServiceWithSubs(&entity.UserSubscription{
		Id:               uuid.New(),
		PlanSlug:         entity.PlanSlugPro,
		Status:           entity.SubscriptionStatusCanceled,
		CurrentPeriodEnd: time.Now().Add(24 * time.Hour),
	})

	res, err := svc.Status(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "canceled", res.Status)
	assert.True(t, res.Entitled, "canceled plans keep access until the paid period ends")
}

func TestPlanStatusCanceledAfterPaidPeriod(t *testing.T) {
	svc, _ := newPlanServiceWithSubs(&entity.UserSubscription{
		Id:               uuid.New(),
		PlanSlug:         entity.PlanSlugPro,
		Status:           entity.SubscriptionStatusCanceled,
		CurrentPeriodEnd: time.Now().Add(-time.Hour),
	})

	res, err := svc.Status(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "free", res.Plan)
	assert.False(t, res.Entitled)
}

func TestPlanHandleNotificationSettlementActivates(t *testing.T) {
	sub := &entity.UserSubscription{
		Id:            uuid.New(),
		PlanSlug:      entity.PlanSlugPro,
		Status:        entity.SubscriptionStatusInactive,
		PaymentStatus: entity.PaymentStatusPending,
	}
	svc, repo := newPlanServiceWithSubs(sub)

	require.NoError(t, svc.HandleNotification(context.Background(), sub.Id.String(), "settlement"))

	require.Len(t, repo.updated, 1)
	assert.Equal(t, entity.SubscriptionStatusActive, repo.updated[0].Status)
	assert.Equal(t, entity.PaymentStatusPaid, repo.updated[0].PaymentStatus)
	require.NotNil(t, repo.updated[0].MidtransTransactionId)
	assert.Equal(t, sub.Id.String(), *repo.updated[0].MidtransTransactionId)
}

func TestPlanHandleNotificationFailureDeactivates(t *testing.T) {
	sub := &entity.UserSubscription{
		Id:            uuid.New(),
		PlanSlug:      entity.PlanSlugPro,
		Status:        entity.SubscriptionStatusInactive,
		PaymentStatus: entity.PaymentStatusPending,
	}
	svc, repo := newPlanServiceWithSubs(sub)

	require.NoError(t, svc.HandleNotification(context.Background(), sub.Id.String(), "expire"))

	require.Len(t, repo.updated, 1)
	assert.Equal(t, entity.SubscriptionStatusInactive, repo.updated[0].Status)
	assert.Equal(t, entity.PaymentStatusFailed, repo.updated[0].PaymentStatus)
}

func TestPlanHandleNotificationPendingIsNoop(t *testing.T) {
	sub := &entity.UserSubscription{Id: uuid.New()}
	svc, repo := newPlanServiceWithSubs(sub)

	require.NoError(t, svc.HandleNotification(context.Background(), sub.Id.String(), "pending"))
	assert.Empty(t, repo.updated)
}

func TestPlanHasFeature(t *testing.T) {
	active := &entity.UserSubscription{
		Id:               uuid.New(),
		PlanSlug:         entity.PlanSlugPro,
		Status:           entity.SubscriptionStatusActive,
		CurrentPeriodEnd: time.Now().Add(24 * time.Hour),
	}

	proSvc, _ := newPlanServiceWithSubs(active)
	freeSvc, _ := newPlanServiceWithSubs()

	userId := uuid.New()
	assert.True(t, proSvc.HasFeature(context.Background(), userId, constant.FeatureSamplePaper))
	assert.False(t, freeSvc.HasFeature(context.Background(), userId, constant.FeatureSamplePaper))
	assert.True(t, freeSvc.HasFeature(context.Background(), userId, "chat"), "ungated features are open to everyone")
	assert.False(t, proSvc.HasFeature(context.Background(), uuid.Nil, constant.FeatureImage), "anonymous users stay locked")
}
