package controller

import (
	"io"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
}

func NewUploadController(service service.IUploadService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.FormValue("session_id"))
	if err != nil {
		return serverutils.BadRequest("invalid session_id")
	}

	req := dto.UploadRequest{
		SessionId:  sessionId,
		YoutubeURL: ctx.FormValue("youtube_url"),
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			f, err := fh.Open()
			if err != nil {
				return serverutils.BadRequest("could not read uploaded file " + fh.Filename)
			}
			content, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return serverutils.BadRequest("could not read uploaded file " + fh.Filename)
			}

			req.Files = append(req.Files, dto.UploadedFile{
				Filename: fh.Filename,
				Content:  content,
			})
		}
	}

	res, err := c.service.Upload(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Upload accepted", res))
}
