package presenters

import (
	"errors"

	"foodgram-backend/domain"
	"foodgram-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type (
	Response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Error   any    `json:"error,omitempty"`
		Data    any    `json:"data,omitempty"`
	}

	FieldErrors map[string]string
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the error envelope. Validation failures carry a field map,
// anything else carries the error text.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}

	var derr *domain.Error
	switch {
	case err == nil:
	case utils.FormatValidationErrors(err) != nil:
		res.Error = FieldErrors(utils.FormatValidationErrors(err))
	case errors.As(err, &derr) && derr.Field != "":
		res.Error = FieldErrors{derr.Field: derr.Message}
	case statusCode >= fiber.StatusInternalServerError:
		res.Error = "internal server error"
	default:
		res.Error = err.Error()
	}

	return c.Status(statusCode).JSON(res)
}

// StatusFromError maps domain error kinds onto HTTP codes. Conflicts are reported
// as 400 because existing clients expect it.
func StatusFromError(err error) int {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		if utils.FormatValidationErrors(err) != nil {
			return fiber.StatusBadRequest
		}
		return fiber.StatusInternalServerError
	}

	switch derr.Kind {
	case domain.KindValidation, domain.KindConflict, domain.KindEmptyCollection:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// Fail is shorthand for ErrorResponse with the status derived from err.
func Fail(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusFromError(err), message, err)
}
