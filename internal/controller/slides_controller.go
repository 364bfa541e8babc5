package controller

import (
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISlidesController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type slidesController struct {
	service service.ISlidesService
}

func NewSlidesController(service service.ISlidesService) ISlidesController {
	return &slidesController{service: service}
}

func (c *slidesController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/slides")
	h.Post("/generate", c.Generate)
}

func (c *slidesController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateSlidesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	data, filename, err := c.service.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.presentationml.presentation")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(data)
}
