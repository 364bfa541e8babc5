package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanService struct {
	proUsers map[uuid.UUID]bool
}

func (s *stubPlanService) Status(ctx context.Context, userId uuid.UUID) (*dto.PlanStatusResponse, error) {
	return &dto.PlanStatusResponse{Plan: "free", Status: "inactive"}, nil
}

func (s *stubPlanService) Upgrade(ctx context.Context, userId uuid.UUID) (*dto.UpgradePlanResponse, error) {
	return &dto.UpgradePlanResponse{}, nil
}

func (s *stubPlanService) HandleNotification(ctx context.Context, orderId, transactionStatus string) error {
	return nil
}

func (s *stubPlanService) HasFeature(ctx context.Context, userId uuid.UUID, feature string) bool {
	return s.proUsers[userId]
}

func newGateApp(plans *stubPlanService, userId uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(func(ctx *fiber.Ctx) error {
		if userId != uuid.Nil {
			ctx.Locals("user_id", userId.String())
		}
		return ctx.Next()
	})
	app.Get("/gated", RequireFeature(plans, "image"), func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", struct{}{}))
	})
	return app
}

func TestRequireFeature(t *testing.T) {
	proUser := uuid.New()
	freeUser := uuid.New()
	plans := &stubPlanService{proUsers: map[uuid.UUID]bool{proUser: true}}

	tests := []struct {
		name       string
		userId     uuid.UUID
		wantStatus int
	}{
		{"pro user passes", proUser, http.StatusOK},
		{"free user denied", freeUser, http.StatusForbidden},
		{"anonymous denied", uuid.Nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGateApp(plans, tt.userId)
			req := httptest.NewRequest(http.MethodGet, "/gated", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
