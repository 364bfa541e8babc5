package controller

import (
	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IImageController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	GenerateFromContext(ctx *fiber.Ctx) error
}

type imageController struct {
	service     service.IImageService
	planService service.IPlanService
}

func NewImageController(service service.IImageService, planService service.IPlanService) IImageController {
	return &imageController{service: service, planService: planService}
}

func (c *imageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/image")
	h.Use(RequireFeature(c.planService, constant.FeatureImage))
	h.Post("/generate", c.Generate)
	h.Post("/generate-from-context", c.GenerateFromContext)
}

func (c *imageController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Image generated", res))
}

func (c *imageController) GenerateFromContext(ctx *fiber.Ctx) error {
	var req dto.GenerateImageFromContextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GenerateFromContext(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Image generated", res))
}
