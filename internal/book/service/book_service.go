package service

import (
	"context"
	"time"

	"github.com/Aranruth94/book-social-network/internal/book/domain"
	"github.com/Aranruth94/book-social-network/internal/book/dto"
	"github.com/Aranruth94/book-social-network/internal/book/policy"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
)

type BookService struct {
	books domain.BookRepository
	loans domain.LoanRepository
}

func NewBookService(books domain.BookRepository, loans domain.LoanRepository) *BookService {
	return &BookService{books: books, loans: loans}
}

func (s *BookService) Save(ctx context.Context, input dto.BookRequest, ownerID int) (int, error) {
	now := time.Now()
	book := &domain.Book{
		OwnerID:    ownerID,
		Title:      input.Title,
		AuthorName: input.AuthorName,
		ISBN:       input.ISBN,
		Synopsis:   input.Synopsis,
		Shareable:  input.Shareable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.books.Create(ctx, book); err != nil {
		return 0, err
	}
	return book.ID, nil
}

func (s *BookService) FindByID(ctx context.Context, bookID int) (*dto.BookResponse, error) {
	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	resp := toBookResponse(book)
	return &resp, nil
}

// FindAllDisplayable lists books the user could borrow: shareable, not
// archived and not their own.
func (s *BookService) FindAllDisplayable(ctx context.Context, page, size, userID int) (dto.PageResponse[dto.BookResponse], error) {
	books, total, err := s.books.FindDisplayable(ctx, userID, size, page*size)
	if err != nil {
		return dto.PageResponse[dto.BookResponse]{}, err
	}
	return dto.NewPageResponse(toBookResponses(books), page, size, total), nil
}

func (s *BookService) FindAllByOwner(ctx context.Context, page, size, ownerID int) (dto.PageResponse[dto.BookResponse], error) {
	books, total, err := s.books.FindByOwner(ctx, ownerID, size, page*size)
	if err != nil {
		return dto.PageResponse[dto.BookResponse]{}, err
	}
	return dto.NewPageResponse(toBookResponses(books), page, size, total), nil
}

func (s *BookService) FindAllBorrowed(ctx context.Context, page, size, userID int) (dto.PageResponse[dto.BorrowedBookResponse], error) {
	loans, total, err := s.loans.FindAllByBorrower(ctx, userID, size, page*size)
	if err != nil {
		return dto.PageResponse[dto.BorrowedBookResponse]{}, err
	}
	return dto.NewPageResponse(toBorrowedResponses(loans), page, size, total), nil
}

func (s *BookService) FindAllReturned(ctx context.Context, page, size, ownerID int) (dto.PageResponse[dto.BorrowedBookResponse], error) {
	loans, total, err := s.loans.FindAllReturnedByOwner(ctx, ownerID, size, page*size)
	if err != nil {
		return dto.PageResponse[dto.BorrowedBookResponse]{}, err
	}
	return dto.NewPageResponse(toBorrowedResponses(loans), page, size, total), nil
}

// UpdateShareableStatus toggles the shareable flag; owner only.
func (s *BookService) UpdateShareableStatus(ctx context.Context, bookID, userID int) (int, error) {
	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err := policy.AssertOwner(book, userID, "you are not the owner of this book"); err != nil {
		return 0, err
	}
	book.Shareable = !book.Shareable
	if err := s.books.Update(ctx, book); err != nil {
		return 0, err
	}
	return book.ID, nil
}

// UpdateArchivedStatus toggles the archived flag; owner only.
func (s *BookService) UpdateArchivedStatus(ctx context.Context, bookID, userID int) (int, error) {
	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err := policy.AssertOwner(book, userID, "you are not the owner of this book"); err != nil {
		return 0, err
	}
	book.Archived = !book.Archived
	if err := s.books.Update(ctx, book); err != nil {
		return 0, err
	}
	return book.ID, nil
}

func (s *BookService) findBook(ctx context.Context, bookID int) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperror.ErrBookNotFound
	}
	return book, nil
}

func toBookResponse(book *domain.Book) dto.BookResponse {
	return dto.BookResponse{
		ID:         book.ID,
		OwnerID:    book.OwnerID,
		Title:      book.Title,
		AuthorName: book.AuthorName,
		ISBN:       book.ISBN,
		Synopsis:   book.Synopsis,
		Shareable:  book.Shareable,
		Archived:   book.Archived,
		Rate:       book.Rate,
	}
}

func toBookResponses(books []domain.Book) []dto.BookResponse {
	out := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		out = append(out, toBookResponse(&books[i]))
	}
	return out
}

func toBorrowedResponses(loans []domain.Loan) []dto.BorrowedBookResponse {
	out := make([]dto.BorrowedBookResponse, 0, len(loans))
	for _, loan := range loans {
		resp := dto.BorrowedBookResponse{
			ID:             loan.BookID,
			Returned:       loan.Status != domain.LoanActive,
			ReturnApproved: loan.Status == domain.LoanReturnApproved,
		}
		if loan.Book != nil {
			resp.Title = loan.Book.Title
			resp.AuthorName = loan.Book.AuthorName
			resp.ISBN = loan.Book.ISBN
			resp.Rate = loan.Book.Rate
		}
		out = append(out, resp)
	}
	return out
}
