package controller

import (
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IModelsController interface {
	RegisterRoutes(r fiber.Router)
	Info(ctx *fiber.Ctx) error
}

type modelsController struct {
	service service.IModelInfoService
}

func NewModelsController(service service.IModelInfoService) IModelsController {
	return &modelsController{service: service}
}

func (c *modelsController) RegisterRoutes(r fiber.Router) {
	r.Get("/models", c.Info)
}

func (c *modelsController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success", c.service.Info()))
}
