package domain

//go:generate mockgen -destination=../../mocks/mock_book_repository.go -package=mocks github.com/Aranruth94/book-social-network/internal/book/domain BookRepository,LoanRepository

import "context"

type BookRepository interface {
	GetByID(ctx context.Context, id int) (*Book, error)
	Create(ctx context.Context, book *Book) error
	Update(ctx context.Context, book *Book) error
	// FindDisplayable lists shareable, non-archived books not owned by the
	// given user, newest first.
	FindDisplayable(ctx context.Context, excludeOwnerID, limit, offset int) ([]Book, int, error)
	FindByOwner(ctx context.Context, ownerID, limit, offset int) ([]Book, int, error)
}

type LoanRepository interface {
	// FindActive resolves the single active loan for a (book, borrower)
	// pair, or nil. If storage ever holds more than one the newest wins.
	FindActive(ctx context.Context, bookID, borrowerID int) (*Loan, error)
	// FindReturnedPending resolves the returned-but-unapproved loan on a
	// book owned by ownerID, or nil.
	FindReturnedPending(ctx context.Context, bookID, ownerID int) (*Loan, error)
	// Create inserts a new active loan. The store serializes concurrent
	// inserts for the same pair; the loser gets ErrAlreadyBorrowed.
	Create(ctx context.Context, loan *Loan) error
	Update(ctx context.Context, loan *Loan) error
	FindAllByBorrower(ctx context.Context, borrowerID, limit, offset int) ([]Loan, int, error)
	FindAllReturnedByOwner(ctx context.Context, ownerID, limit, offset int) ([]Loan, int, error)
}
