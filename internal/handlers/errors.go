package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/daily"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/progress"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// toHTTPError maps domain errors to client errors. Anything it does not
// recognise is returned unchanged and ends up as a 500.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidLevel),
		errors.Is(err, daily.ErrInvalidDate),
		errors.Is(err, progress.ErrInvalidScore),
		errors.Is(err, progress.ErrMissingGameID),
		errors.Is(err, dto.ErrMissingScore):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrGameNotFound),
		errors.Is(err, daily.ErrNoGamesAvailable):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// ErrorHandler renders every error as dto.ErrorResponse. Server errors are
// logged, reported to Sentry and answered with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled server error",
			"request_id", requestID(c),
			"user_id", identity.GetUserID(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
