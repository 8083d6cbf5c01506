package serverutils

import (
	"errors"

	"lecture-notes-be/pkg/llm"
	"lecture-notes-be/pkg/studygen/extract"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts the error taxonomy into the JSON error body
// contract: {"error": "..."} with the matching status code. NotFound maps to
// 403 alongside Forbidden so the API never leaks whether another user's
// resource exists.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var (
			validationErr *ValidationError
			forbiddenErr  *ForbiddenError
			notFoundErr   *NotFoundError
			upstreamErr   *llm.UpstreamError
			malformedErr  *extract.MalformedResponseError
			persistErr    *PersistenceError
			fiberErr      *fiber.Error
		)

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error()))
		case errors.As(err, &forbiddenErr), errors.As(err, &notFoundErr):
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse("Unauthorized note access"))
		case errors.As(err, &upstreamErr):
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Generative model request failed"))
		case errors.As(err, &malformedErr):
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Generative model returned an unparseable response"))
		case errors.As(err, &persistErr):
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Failed to save generated artifacts"))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
		}
	}
}
