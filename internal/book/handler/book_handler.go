package handler

import (
	"github.com/Aranruth94/book-social-network/internal/book/dto"
	"github.com/Aranruth94/book-social-network/internal/book/service"
	"github.com/Aranruth94/book-social-network/internal/web"
	"github.com/gofiber/fiber/v2"
)

type BookHandler struct {
	bookService    *service.BookService
	lendingService *service.LendingService
}

func NewBookHandler(bookService *service.BookService, lendingService *service.LendingService) *BookHandler {
	return &BookHandler{
		bookService:    bookService,
		lendingService: lendingService,
	}
}

func (h *BookHandler) Save(c *fiber.Ctx) error {
	var input dto.BookRequest
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}

	id, err := h.bookService.Save(c.Context(), input, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *BookHandler) FindByID(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	book, err := h.bookService.FindByID(c.Context(), bookID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(book)
}

func (h *BookHandler) FindAll(c *fiber.Ctx) error {
	page, size := paging(c)
	resp, err := h.bookService.FindAllDisplayable(c.Context(), page, size, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BookHandler) FindAllByOwner(c *fiber.Ctx) error {
	page, size := paging(c)
	resp, err := h.bookService.FindAllByOwner(c.Context(), page, size, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BookHandler) FindAllBorrowed(c *fiber.Ctx) error {
	page, size := paging(c)
	resp, err := h.bookService.FindAllBorrowed(c.Context(), page, size, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BookHandler) FindAllReturned(c *fiber.Ctx) error {
	page, size := paging(c)
	resp, err := h.bookService.FindAllReturned(c.Context(), page, size, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BookHandler) UpdateShareableStatus(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	id, err := h.bookService.UpdateShareableStatus(c.Context(), bookID, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func (h *BookHandler) UpdateArchivedStatus(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	id, err := h.bookService.UpdateArchivedStatus(c.Context(), bookID, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func (h *BookHandler) Borrow(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	id, err := h.lendingService.Borrow(c.Context(), bookID, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func (h *BookHandler) Return(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	id, err := h.lendingService.Return(c.Context(), bookID, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func (h *BookHandler) ApproveReturn(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	id, err := h.lendingService.ApproveReturn(c.Context(), bookID, web.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"id": id})
}

func paging(c *fiber.Ctx) (page, size int) {
	page = c.QueryInt("page", 0)
	size = c.QueryInt("size", 10)
	if page < 0 {
		page = 0
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}
