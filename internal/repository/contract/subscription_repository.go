package contract

import (
	"context"

	"ai-studybuddy-be/internal/entity"
	"ai-studybuddy-be/internal/repository/specification"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.UserSubscription) error
	Update(ctx context.Context, subscription *entity.UserSubscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error)
}
