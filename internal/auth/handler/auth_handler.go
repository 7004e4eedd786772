package handler

import (
	"github.com/Aranruth94/book-social-network/internal/auth/dto"
	"github.com/Aranruth94/book-social-network/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService       *service.AuthService
	activationService *service.ActivationService
}

func NewAuthHandler(authService *service.AuthService, activationService *service.ActivationService) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		activationService: activationService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}

	if err := h.authService.Register(c.Context(), input); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusAccepted)
}

func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}

	tokenPair, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

func (h *AuthHandler) ActivateAccount(c *fiber.Ctx) error {
	code := c.Query("token")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing token")
	}

	if err := h.activationService.Activate(c.Context(), code); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
