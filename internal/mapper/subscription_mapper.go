package mapper

import (
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.UserSubscription) *entity.UserSubscription {
	if s == nil {
		return nil
	}

	return &entity.UserSubscription{
		Id:                    s.Id,
		UserId:                s.UserId,
		PlanSlug:              entity.PlanSlug(s.PlanSlug),
		Status:                entity.SubscriptionStatus(s.Status),
		PaymentStatus:         entity.PaymentStatus(s.PaymentStatus),
		CurrentPeriodStart:    s.CurrentPeriodStart,
		CurrentPeriodEnd:      s.CurrentPeriodEnd,
		MidtransTransactionId: s.MidtransTransactionId,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.UserSubscription) *model.UserSubscription {
	if s == nil {
		return nil
	}

	return &model.UserSubscription{
		Id:                    s.Id,
		UserId:                s.UserId,
		PlanSlug:              string(s.PlanSlug),
		Status:                string(s.Status),
		PaymentStatus:         string(s.PaymentStatus),
		CurrentPeriodStart:    s.CurrentPeriodStart,
		CurrentPeriodEnd:      s.CurrentPeriodEnd,
		MidtransTransactionId: s.MidtransTransactionId,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
