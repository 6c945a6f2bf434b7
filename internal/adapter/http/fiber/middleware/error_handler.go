package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/domain"
)

// ErrorHandler maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged with its real cause; the client
// only ever sees the message.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, domain.ErrInvalidCredentials),
			errors.Is(err, domain.ErrInvalidTwoFactorCode):
			code = fiber.StatusUnauthorized
		case errors.Is(err, domain.ErrForbidden),
			errors.Is(err, domain.ErrMissingTenantContext):
			code = fiber.StatusForbidden
		case errors.Is(err, domain.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, domain.ErrSlotConflict):
			code = fiber.StatusConflict
		case errors.Is(err, domain.ErrPastDate),
			errors.Is(err, domain.ErrInvalidTimeRange),
			errors.Is(err, domain.ErrInvalidProfileSelection):
			code = fiber.StatusUnprocessableEntity
		case errors.Is(err, domain.ErrPaymentInitiation):
			code = fiber.StatusBadGateway
		}

		if code == fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
