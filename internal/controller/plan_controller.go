package controller

import (
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlanController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
	Status(ctx *fiber.Ctx) error
	Upgrade(ctx *fiber.Ctx) error
	Notification(ctx *fiber.Ctx) error
}

type planController struct {
	planService service.IPlanService
}

func NewPlanController(planService service.IPlanService) IPlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	h := api.Group("/plan")
	h.Get("/status", jwtMiddleware, c.Status)
	h.Post("/upgrade", jwtMiddleware, c.Upgrade)

	// Payment gateway webhook, no auth.
	h.Post("/notification", c.Notification)
}

func (c *planController) Status(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.BadRequest("invalid user id")
	}

	res, err := c.planService.Status(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Plan status", res))
}

func (c *planController) Upgrade(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.BadRequest("invalid user id")
	}

	res, err := c.planService.Upgrade(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *planController) Notification(ctx *fiber.Ctx) error {
	var req struct {
		OrderId           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.planService.HandleNotification(ctx.Context(), req.OrderId, req.TransactionStatus); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("OK", struct{}{}))
}
