package service

import (
	"context"

	"github.com/Aranruth94/book-social-network/internal/book/domain"
	"github.com/Aranruth94/book-social-network/internal/book/policy"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
)

// LendingService drives the loan lifecycle for a (book, borrower) pair:
// none -> active -> returned -> return approved. Every transition re-checks
// borrowability, so archiving a book freezes its loans mid-flight as well.
type LendingService struct {
	books domain.BookRepository
	loans domain.LoanRepository
}

func NewLendingService(books domain.BookRepository, loans domain.LoanRepository) *LendingService {
	return &LendingService{books: books, loans: loans}
}

// Borrow opens a new active loan. At most one active loan may exist per
// (book, borrower) pair; the pre-check catches the common case and the
// store's uniqueness guarantee settles concurrent races.
func (s *LendingService) Borrow(ctx context.Context, bookID, borrowerID int) (int, error) {
	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return 0, err
	}

	if err := policy.AssertBorrowable(book); err != nil {
		return 0, err
	}
	if err := policy.AssertNotOwner(book, borrowerID, "you cannot borrow your own book"); err != nil {
		return 0, err
	}

	existing, err := s.loans.FindActive(ctx, bookID, borrowerID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, apperror.ErrAlreadyBorrowed
	}

	loan := &domain.Loan{
		BookID:     bookID,
		BorrowerID: borrowerID,
		Status:     domain.LoanActive,
	}
	if err := s.loans.Create(ctx, loan); err != nil {
		return 0, err
	}

	return loan.ID, nil
}

// Return marks the borrower's active loan as returned, pending the owner's
// approval.
func (s *LendingService) Return(ctx context.Context, bookID, returnerID int) (int, error) {
	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return 0, err
	}

	if err := policy.AssertBorrowable(book); err != nil {
		return 0, err
	}
	if err := policy.AssertNotOwner(book, returnerID, "you cannot borrow or return your own book"); err != nil {
		return 0, err
	}

	loan, err := s.loans.FindActive(ctx, bookID, returnerID)
	if err != nil {
		return 0, err
	}
	if loan == nil {
		return 0, apperror.ErrNotBorrowed
	}

	loan.Status = domain.LoanReturned
	if err := s.loans.Update(ctx, loan); err != nil {
		return 0, err
	}

	return loan.ID, nil
}

// ApproveReturn closes a returned loan on a book the approver owns. The
// ownership check is implicit in the lookup: only loans whose book owner
// matches the approver resolve here.
func (s *LendingService) ApproveReturn(ctx context.Context, bookID, approverID int) (int, error) {
	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return 0, err
	}

	if err := policy.AssertBorrowable(book); err != nil {
		return 0, err
	}

	loan, err := s.loans.FindReturnedPending(ctx, bookID, approverID)
	if err != nil {
		return 0, err
	}
	if loan == nil {
		return 0, apperror.ErrReturnNotPending
	}

	loan.Status = domain.LoanReturnApproved
	if err := s.loans.Update(ctx, loan); err != nil {
		return 0, err
	}

	return loan.ID, nil
}

func (s *LendingService) findBook(ctx context.Context, bookID int) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperror.ErrBookNotFound
	}
	return book, nil
}
