package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aranruth94/book-social-network/internal/auth/domain"
	"github.com/Aranruth94/book-social-network/internal/auth/dto"
	"github.com/Aranruth94/book-social-network/internal/auth/handler"
	"github.com/Aranruth94/book-social-network/internal/auth/service"
	"github.com/Aranruth94/book-social-network/internal/mocks"
	"github.com/Aranruth94/book-social-network/internal/web"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockUserRepository, *mocks.MockTokenRepository, *mocks.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenRepository(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	activationService := service.NewActivationService(mockUsers, mockTokens, mockNotifier, 15, 6)
	tokenService := service.NewTokenService("test-secret", 60)
	authService := service.NewAuthService(mockUsers, activationService, tokenService)

	app := fiber.New(fiber.Config{ErrorHandler: web.ErrorHandler})
	handler.RegisterRoutes(app, handler.NewAuthHandler(authService, activationService))
	return app, mockUsers, mockTokens, mockNotifier
}

func TestRegisterEndpoint(t *testing.T) {
	app, mockUsers, mockTokens, mockNotifier := newTestApp(t)

	t.Run("accepted", func(t *testing.T) {
		input := dto.RegisterInput{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "password123"}

		mockUsers.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
		mockUsers.EXPECT().GetRoleByName(gomock.Any(), "USER").Return(&domain.Role{ID: 1, Name: "USER"}, nil)
		mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mockTokens.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockNotifier.EXPECT().SendActivationCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	})

	t.Run("bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		input := dto.RegisterInput{Email: "jane@example.com", Password: "password123"}
		mockUsers.EXPECT().GetByEmail(gomock.Any(), input.Email).
			Return(&domain.User{ID: 1, Email: input.Email}, nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestAuthenticateEndpoint(t *testing.T) {
	app, mockUsers, _, _ := newTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:           7,
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Enabled:      true,
	}

	t.Run("success returns token", func(t *testing.T) {
		mockUsers.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		body, _ := json.Marshal(dto.LoginInput{Email: user.Email, Password: "password123"})
		req := httptest.NewRequest("POST", "/api/v1/auth/authenticate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var tokenResp dto.TokenResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokenResp))
		assert.NotEmpty(t, tokenResp.AccessToken)
	})

	t.Run("bad credentials", func(t *testing.T) {
		mockUsers.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		body, _ := json.Marshal(dto.LoginInput{Email: user.Email, Password: "wrong"})
		req := httptest.NewRequest("POST", "/api/v1/auth/authenticate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestActivateAccountEndpoint(t *testing.T) {
	app, mockUsers, mockTokens, _ := newTestApp(t)

	t.Run("success", func(t *testing.T) {
		token := &domain.ActivationToken{
			ID:        42,
			Code:      "123456",
			UserID:    7,
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}
		mockTokens.EXPECT().FindByCode(gomock.Any(), "123456").Return(token, nil)
		mockTokens.EXPECT().MarkValidated(gomock.Any(), 42, gomock.Any()).Return(nil)
		mockUsers.EXPECT().Enable(gomock.Any(), 7).Return(nil)

		req := httptest.NewRequest("GET", "/api/v1/auth/activate-account?token=123456", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		mockTokens.EXPECT().FindByCode(gomock.Any(), "000000").Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/v1/auth/activate-account?token=000000", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing token param", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/auth/activate-account", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
