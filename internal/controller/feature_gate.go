package controller

import (
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserID returns the authenticated user or uuid.Nil for anonymous
// requests.
func currentUserID(ctx *fiber.Ctx) uuid.UUID {
	raw, _ := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(raw)
	return id
}

// RequireFeature blocks requests whose user lacks access to a gated feature.
// Anonymous users are always denied.
func RequireFeature(plans service.IPlanService, feature string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId := currentUserID(ctx)
		if !plans.HasFeature(ctx.Context(), userId, feature) {
			return serverutils.Forbidden("This feature requires a Pro plan.")
		}
		return ctx.Next()
	}
}
