package controller

import (
	"io"

	"ai-studybuddy-be/internal/constant"
	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAudioController interface {
	RegisterRoutes(r fiber.Router)
	Interact(ctx *fiber.Ctx) error
}

type audioController struct {
	service     service.IAudioService
	planService service.IPlanService
}

func NewAudioController(service service.IAudioService, planService service.IPlanService) IAudioController {
	return &audioController{service: service, planService: planService}
}

func (c *audioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/audio")
	h.Post("/interact", RequireFeature(c.planService, constant.FeatureTeacher), c.Interact)
}

func (c *audioController) Interact(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.FormValue("session_id"))
	if err != nil {
		return serverutils.BadRequest("invalid session_id")
	}

	req := dto.AudioInteractRequest{
		SessionId: sessionId,
		Text:      ctx.FormValue("text"),
		Language:  ctx.FormValue("language"),
	}

	if fh, err := ctx.FormFile("audio"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return serverutils.BadRequest("could not read audio upload")
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return serverutils.BadRequest("could not read audio upload")
		}
		req.Audio = content
		req.AudioFilename = fh.Filename
	}

	res, err := c.service.Interact(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
