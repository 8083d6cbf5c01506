package controller

import (
	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFlashcardController interface {
	RegisterRoutes(r fiber.Router)
	ListByNote(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

type flashcardController struct {
	flashcardService  service.IFlashcardService
	generationService service.IGenerationService
}

func NewFlashcardController(flashcardService service.IFlashcardService, generationService service.IGenerationService) IFlashcardController {
	return &flashcardController{
		flashcardService:  flashcardService,
		generationService: generationService,
	}
}

func (c *flashcardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/flashcards")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
	h.Get("", c.ListByNote)
	h.Delete(":id", c.Delete)
}

func (c *flashcardController) ListByNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Query("noteId"))
	if err != nil {
		return serverutils.NewValidationError("noteId query parameter is required")
	}

	res, err := c.flashcardService.ListByNote(ctx.Context(), userId, noteId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *flashcardController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.flashcardService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *flashcardController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateFlashcardsRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.generationService.GenerateFlashcards(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
