package service

import (
	"context"
	"fmt"
	"time"

	"ai-studybuddy-be/internal/config"
	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/specification"
	"ai-studybuddy-be/internal/repository/unitofwork"
	"ai-studybuddy-be/pkg/events"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPlanService interface {
	// Status reports the caller's effective plan and the gated feature keys.
	Status(ctx context.Context, userId uuid.UUID) (*dto.PlanStatusResponse, error)

	// Upgrade opens a pending pro subscription and returns a Midtrans Snap
	// checkout token for it.
	Upgrade(ctx context.Context, userId uuid.UUID) (*dto.UpgradePlanResponse, error)

	// HandleNotification processes the Midtrans payment webhook.
	HandleNotification(ctx context.Context, orderId string, transactionStatus string) error

	// HasFeature reports whether the user may use a gated feature. Unknown
	// users and lookup failures deny access.
	HasFeature(ctx context.Context, userId uuid.UUID, feature string) bool
}

type planService struct {
	uowFactory     unitofwork.RepositoryFactory
	cfg            *config.Config
	eventPublisher events.Publisher
}

func NewPlanService(
	uowFactory unitofwork.RepositoryFactory,
	cfg *config.Config,
	eventPublisher events.Publisher,
) IPlanService {
	return &planService{
		uowFactory:     uowFactory,
		cfg:            cfg,
		eventPublisher: eventPublisher,
	}
}

// activeSubscription returns the newest subscription that still grants
// access, or nil for free users.
func (s *planService) activeSubscription(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.UserSubscription, error) {
	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	for _, sub := range subs {
		if sub.IsPro() {
			return sub, nil
		}
		// Canceled but still inside the paid period keeps access.
		if sub.PlanSlug == entity.PlanSlugPro &&
			sub.Status == entity.SubscriptionStatusCanceled &&
			sub.CurrentPeriodEnd.After(time.Now()) {
			return sub, nil
		}
	}
	return nil, nil
}

func (s *planService) Status(ctx context.Context, userId uuid.UUID) (*dto.PlanStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.activeSubscription(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	res := &dto.PlanStatusResponse{
		Plan:        string(entity.PlanSlugFree),
		Status:      string(entity.SubscriptionStatusInactive),
		ProFeatures: constant.ProFeatures(),
	}
	if sub != nil {
		res.Plan = string(sub.PlanSlug)
		res.Status = string(sub.Status)
		res.Entitled = true
		end := sub.CurrentPeriodEnd
		res.PeriodEnd = &end
	}
	return res, nil
}

func (s *planService) Upgrade(ctx context.Context, userId uuid.UUID) (*dto.UpgradePlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub := entity.UserSubscription{
		Id:                 uuid.New(),
		UserId:             userId,
		PlanSlug:           entity.PlanSlugPro,
		Status:             entity.SubscriptionStatusInactive,
		PaymentStatus:      entity.PaymentStatusPending,
		CurrentPeriodStart: time.Now(),
		CurrentPeriodEnd:   time.Now().AddDate(0, 1, 0),
		CreatedAt:          time.Now(),
	}
	if err := uow.SubscriptionRepository().Create(ctx, &sub); err != nil {
		return nil, err
	}

	// External call after the row is committed.
	var sClient snap.Client
	env := midtrans.Production
	if s.cfg.Billing.MidtransSandbox {
		env = midtrans.Sandbox
	}
	sClient.New(s.cfg.Billing.MidtransServerKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  sub.Id.String(),
			GrossAmt: s.cfg.Billing.ProPlanPriceIDR,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/app?payment=success", s.cfg.App.ClientURL),
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    string(entity.PlanSlugPro),
				Price: s.cfg.Billing.ProPlanPriceIDR,
				Qty:   1,
				Name:  "Study Buddy Pro (monthly)",
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	// Sandbox has no live payment webhook, so settle the subscription
	// immediately and let the checkout link stay informational.
	if s.cfg.Billing.MidtransSandbox {
		if err := s.HandleNotification(ctx, sub.Id.String(), "settlement"); err != nil {
			return nil, err
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "SUBSCRIPTION_CREATED",
			Data: map[string]interface{}{
				"user_id":         userId,
				"subscription_id": sub.Id,
				"plan":            string(entity.PlanSlugPro),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_CREATED event: %v\n", err)
		}
	}

	return &dto.UpgradePlanResponse{
		OrderId:     sub.Id.String(),
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *planService) HandleNotification(ctx context.Context, orderId string, transactionStatus string) error {
	subId, err := uuid.Parse(orderId)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subId})
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("subscription %s not found", orderId)
	}

	switch transactionStatus {
	case "settlement", "capture":
		sub.Status = entity.SubscriptionStatusActive
		sub.PaymentStatus = entity.PaymentStatusPaid
		tx := orderId
		sub.MidtransTransactionId = &tx
	case "deny", "cancel", "expire", "failure":
		sub.Status = entity.SubscriptionStatusInactive
		sub.PaymentStatus = entity.PaymentStatusFailed
	default:
		return nil // pending etc., nothing to change
	}

	return uow.SubscriptionRepository().Update(ctx, sub)
}

func (s *planService) HasFeature(ctx context.Context, userId uuid.UUID, feature string) bool {
	gated := false
	for _, key := range constant.ProFeatures() {
		if key == feature {
			gated = true
			break
		}
	}
	if !gated {
		return true
	}

	if userId == uuid.Nil {
		return false
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := s.activeSubscription(ctx, uow, userId)
	if err != nil {
		// Fail closed on lookup errors.
		return false
	}
	return sub != nil
}
