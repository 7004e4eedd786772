package web_test

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	apperror "github.com/Aranruth94/book-social-network/internal/errors"
	"github.com/Aranruth94/book-social-network/internal/web"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appReturning(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: web.ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"permission error", apperror.NewPermission("you are not the owner of this book"), fiber.StatusForbidden},
		{"notification error", &apperror.NotificationError{Err: errors.New("smtp down")}, fiber.StatusBadGateway},
		{"book not found", apperror.ErrBookNotFound, fiber.StatusNotFound},
		{"user not found", apperror.ErrUserNotFound, fiber.StatusNotFound},
		{"already borrowed", apperror.ErrAlreadyBorrowed, fiber.StatusConflict},
		{"not borrowed", apperror.ErrNotBorrowed, fiber.StatusConflict},
		{"return not pending", apperror.ErrReturnNotPending, fiber.StatusConflict},
		{"token not found", apperror.ErrTokenNotFound, fiber.StatusBadRequest},
		{"token expired", apperror.ErrTokenExpired, fiber.StatusBadRequest},
		{"token already used", apperror.ErrTokenAlreadyUsed, fiber.StatusBadRequest},
		{"email already in use", apperror.ErrEmailAlreadyInUse, fiber.StatusBadRequest},
		{"invalid credentials", apperror.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"account locked", apperror.ErrAccountLocked, fiber.StatusUnauthorized},
		{"account disabled", apperror.ErrAccountDisabled, fiber.StatusUnauthorized},
		{"role not configured", apperror.ErrRoleNotConfigured, fiber.StatusInternalServerError},
		{"unknown error", errors.New("boom"), fiber.StatusInternalServerError},
		{"fiber error passes through", fiber.NewError(fiber.StatusTeapot, "teapot"), fiber.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appReturning(tt.err)

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestErrorHandlerWrappedError(t *testing.T) {
	app := appReturning(fmt.Errorf("borrow failed: %w", apperror.ErrAlreadyBorrowed))

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
