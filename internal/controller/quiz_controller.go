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

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
	Documents(ctx *fiber.Ctx) error
	GeneratePaper(ctx *fiber.Ctx) error
	DownloadPaper(ctx *fiber.Ctx) error
}

type quizController struct {
	quizService   service.IQuizService
	uploadService service.IUploadService
	paperService  service.IPaperService
	planService   service.IPlanService
}

func NewQuizController(
	quizService service.IQuizService,
	uploadService service.IUploadService,
	paperService service.IPaperService,
	planService service.IPlanService,
) IQuizController {
	return &quizController{
		quizService:   quizService,
		uploadService: uploadService,
		paperService:  paperService,
		planService:   planService,
	}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quiz")
	h.Post("/generate", c.Generate)
	h.Post("/analyze", c.Analyze)
	h.Post("/summary", c.Summary)
	h.Get("/documents/:session_id", c.Documents)
	h.Post("/pyq-generator", RequireFeature(c.planService, constant.FeatureSamplePaper), c.GeneratePaper)
	h.Post("/download-paper", RequireFeature(c.planService, constant.FeatureSamplePaper), c.DownloadPaper)
}

func (c *quizController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Quiz generated", res))
}

func (c *quizController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Analyze(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Quiz analyzed", res))
}

func (c *quizController) Summary(ctx *fiber.Ctx) error {
	var req dto.SummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quizService.Summary(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Summary generated", res))
}

func (c *quizController) Documents(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("session_id"))
	if err != nil {
		return serverutils.BadRequest("invalid session id")
	}

	res, err := c.uploadService.ListDocuments(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

// GeneratePaper takes a multipart form: session_id, an optional subject and
// an optional "file" part holding a past exam paper to copy the structure of.
func (c *quizController) GeneratePaper(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.FormValue("session_id"))
	if err != nil {
		return serverutils.BadRequest("invalid session_id")
	}

	req := dto.GeneratePaperRequest{
		SessionId: sessionId,
		Subject:   ctx.FormValue("subject"),
	}

	if fh, err := ctx.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return serverutils.BadRequest("could not read uploaded file " + fh.Filename)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return serverutils.BadRequest("could not read uploaded file " + fh.Filename)
		}

		req.Reference = &dto.UploadedFile{
			Filename: fh.Filename,
			Content:  content,
		}
	}

	res, err := c.paperService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Sample paper generated", res))
}

func (c *quizController) DownloadPaper(ctx *fiber.Ctx) error {
	var req dto.DownloadPaperRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	data, err := c.paperService.BuildDocx(&req.Paper)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="sample_paper.docx"`)
	return ctx.Send(data)
}
