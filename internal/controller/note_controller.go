package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	uploadDir   string
	baseURL     string
}

func NewNoteController(noteService service.INoteService, uploadDir, baseURL string) INoteController {
	return &noteController{
		noteService: noteService,
		uploadDir:   uploadDir,
		baseURL:     baseURL,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Upload)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func sourceKindFor(filename string) (entity.SourceKind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return entity.SourceKindPdf, nil
	case ".png", ".jpg", ".jpeg":
		return entity.SourceKindImage, nil
	default:
		return "", serverutils.NewValidationError("only pdf and image uploads are supported")
	}
}

func (c *noteController) Upload(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	file, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewValidationError("file is required")
	}

	kind, err := sourceKindFor(file.Filename)
	if err != nil {
		return err
	}

	req := dto.UploadNoteRequest{
		Title: ctx.FormValue("title"),
	}
	if req.Title == "" {
		req.Title = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	}
	if courseIdStr := ctx.FormValue("course_id"); courseIdStr != "" {
		courseId, err := uuid.Parse(courseIdStr)
		if err != nil {
			return serverutils.NewValidationError("invalid course_id")
		}
		req.CourseId = &courseId
	}

	storedName := fmt.Sprintf("%s%s", uuid.New(), filepath.Ext(file.Filename))
	if err := ctx.SaveFile(file, filepath.Join(c.uploadDir, storedName)); err != nil {
		return err
	}
	fileURL := fmt.Sprintf("%s/uploads/%s", c.baseURL, storedName)

	res, err := c.noteService.Upload(ctx.Context(), userId, &req, fileURL, kind)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
