package handler

import (
	"github.com/Aranruth94/book-social-network/internal/feedback/dto"
	"github.com/Aranruth94/book-social-network/internal/feedback/service"
	"github.com/Aranruth94/book-social-network/internal/web"
	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) Save(c *fiber.Ctx) error {
	var input dto.FeedbackRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}

	id, err := h.feedbackService.Save(c.Context(), input, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *FeedbackHandler) FindAllByBook(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("bookId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	resp, err := h.feedbackService.FindAllByBook(c.Context(), bookID, page, size, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func RegisterRoutes(app *fiber.App, h *FeedbackHandler, requireAuth fiber.Handler) {
	feedbacks := app.Group("/api/v1/feedbacks", requireAuth)
	feedbacks.Post("/", h.Save)
	feedbacks.Get("/book/:bookId", h.FindAllByBook)
}
