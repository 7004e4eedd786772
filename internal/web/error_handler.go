// Package web holds the Fiber boundary glue shared by all feature handlers:
// domain-error translation and the bearer-token middleware.
package web

import (
	"errors"

	apperror "github.com/Aranruth94/book-social-network/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps domain errors to HTTP responses. Handlers return domain
// errors as-is; nothing below the boundary knows about status codes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	var permErr *apperror.PermissionError
	if errors.As(err, &permErr) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": permErr.Message})
	}

	var notifErr *apperror.NotificationError
	if errors.As(err, &notifErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": notifErr.Error()})
	}

	switch {
	case errors.Is(err, apperror.ErrBookNotFound),
		errors.Is(err, apperror.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, apperror.ErrAlreadyBorrowed),
		errors.Is(err, apperror.ErrNotBorrowed),
		errors.Is(err, apperror.ErrReturnNotPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, apperror.ErrTokenNotFound),
		errors.Is(err, apperror.ErrTokenExpired),
		errors.Is(err, apperror.ErrTokenAlreadyUsed),
		errors.Is(err, apperror.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, apperror.ErrInvalidCredentials),
		errors.Is(err, apperror.ErrAccountLocked),
		errors.Is(err, apperror.ErrAccountDisabled):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	// ErrRoleNotConfigured and anything unrecognized is an internal fault.
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
