package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// FiberErrorHandler writes {"error": message}. Causes of internal errors and
// unknown errors are logged, never sent to the caller.
func FiberErrorHandler(log *zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *Error
		if errors.As(err, &appErr) {
			if appErr.Kind == KindInternal {
				log.Error().Err(appErr.Cause).
					Str("method", c.Method()).
					Str("path", c.Path()).
					Msg(appErr.Message)
			}
			return c.Status(appErr.Status()).JSON(fiber.Map{"error": appErr.Message})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unexpected error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error."})
	}
}

// StatusOf reports the status FiberErrorHandler answers err with.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
