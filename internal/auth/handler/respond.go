package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// fail maps a service error onto the HTTP envelope. Remote script failures
// pass through verbatim; anything unrecognized collapses to a generic 500 so
// transport details never leak to clients.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal Server Error"

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrPinMismatch),
		errors.Is(err, apperrors.ErrSessionExpired),
		errors.Is(err, apperrors.ErrInvalidAdminCredentials):
		status = fiber.StatusUnauthorized
		message = err.Error()

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrTokenNotFound):
		status = fiber.StatusNotFound
		message = err.Error()

	case errors.Is(err, apperrors.ErrEmailAlreadyInUse),
		errors.Is(err, apperrors.ErrDuplicateScriptURL),
		errors.Is(err, apperrors.ErrDatabaseLimitReached),
		errors.Is(err, apperrors.ErrEditLimitReached):
		status = fiber.StatusBadRequest
		message = err.Error()

	case errors.Is(err, apperrors.ErrInvalidUpstream):
		status = fiber.StatusBadGateway
		message = err.Error()

	case errors.Is(err, apperrors.ErrStoreBusy):
		status = fiber.StatusServiceUnavailable
		message = err.Error()

	case errors.Is(err, apperrors.ErrMissingScriptURL),
		errors.Is(err, apperrors.ErrAdminNotConfigured):
		message = err.Error()

	default:
		var remote *apperrors.Remote
		if errors.As(err, &remote) {
			message = remote.Message
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
