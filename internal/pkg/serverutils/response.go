package serverutils

import (
	"errors"

	"legal-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every controller returns.
type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

// ErrorHandlerMiddleware converts uncaught errors into the standard
// envelope. Domain sentinel errors map to their HTTP status here so
// controllers can simply return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			code = fiber.StatusBadRequest
		case errors.Is(err, service.ErrNoActiveSession), errors.Is(err, service.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
			code = fiber.StatusUnauthorized
		case errors.Is(err, service.ErrEmailTaken):
			code = fiber.StatusConflict
		default:
			var validationErr *ValidationError
			if errors.As(err, &validationErr) {
				code = fiber.StatusUnprocessableEntity
			} else if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
			}
		}

		return ctx.Status(code).JSON(Response[any]{
			Success: false,
			Code:    code,
			Message: err.Error(),
			Data:    nil,
		})
	}
}
