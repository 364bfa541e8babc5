package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type PaymentStatus string
type PlanSlug string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"

	PlanSlugFree PlanSlug = "free"
	PlanSlugPro  PlanSlug = "pro"
)

type UserSubscription struct {
	Id                    uuid.UUID
	UserId                uuid.UUID
	PlanSlug              PlanSlug
	Status                SubscriptionStatus
	PaymentStatus         PaymentStatus
	CurrentPeriodStart    time.Time
	CurrentPeriodEnd      time.Time
	MidtransTransactionId *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsPro reports whether the subscription grants gated features right now.
func (s *UserSubscription) IsPro() bool {
	if s == nil {
		return false
	}
	return s.PlanSlug == PlanSlugPro &&
		s.Status == SubscriptionStatusActive &&
		time.Now().Before(s.CurrentPeriodEnd)
}
