package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aranruth94/book-social-network/internal/book/domain"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresLoanRepository struct {
	db Querier
}

func NewPostgresLoanRepository(db Querier) *PostgresLoanRepository {
	return &PostgresLoanRepository{db: db}
}

func (r *PostgresLoanRepository) FindActive(ctx context.Context, bookID, borrowerID int) (*domain.Loan, error) {
	query := `
		SELECT id, book_id, user_id, returned, return_approved, created_at, updated_at
		FROM book_transaction_history
		WHERE book_id = $1 AND user_id = $2 AND returned = false
		ORDER BY created_at DESC
		LIMIT 1;
	`
	loan, err := scanLoan(r.db.QueryRow(ctx, query, bookID, borrowerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active loan: %w", err)
	}
	return loan, nil
}

func (r *PostgresLoanRepository) FindReturnedPending(ctx context.Context, bookID, ownerID int) (*domain.Loan, error) {
	query := `
		SELECT h.id, h.book_id, h.user_id, h.returned, h.return_approved, h.created_at, h.updated_at
		FROM book_transaction_history h
		JOIN books b ON b.id = h.book_id
		WHERE h.book_id = $1 AND b.owner_id = $2
		  AND h.returned = true AND h.return_approved = false
		ORDER BY h.created_at DESC
		LIMIT 1;
	`
	loan, err := scanLoan(r.db.QueryRow(ctx, query, bookID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find returned loan: %w", err)
	}
	return loan, nil
}

// Create inserts an active loan. A partial unique index on
// (book_id, user_id) WHERE NOT returned serializes concurrent borrows of the
// same pair; the losing insert maps to ErrAlreadyBorrowed.
func (r *PostgresLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	returned, approved := encodeStatus(loan.Status)
	query := `
		INSERT INTO book_transaction_history (book_id, user_id, returned, return_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		loan.BookID, loan.BorrowerID, returned, approved,
	).Scan(&loan.ID, &loan.CreatedAt, &loan.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.ErrAlreadyBorrowed
		}
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

func (r *PostgresLoanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	returned, approved := encodeStatus(loan.Status)
	_, err := r.db.Exec(ctx, `
		UPDATE book_transaction_history
		SET returned = $2, return_approved = $3, updated_at = now()
		WHERE id = $1;
	`, loan.ID, returned, approved)
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	return nil
}

func (r *PostgresLoanRepository) FindAllByBorrower(ctx context.Context, borrowerID, limit, offset int) ([]domain.Loan, int, error) {
	query := `
		SELECT h.id, h.book_id, h.user_id, h.returned, h.return_approved, h.created_at, h.updated_at,
		       b.id, b.owner_id, b.title, b.author_name, b.isbn, b.synopsis,
		       b.shareable, b.archived, b.rate, b.created_at, b.updated_at
		FROM book_transaction_history h
		JOIN books b ON b.id = h.book_id
		WHERE h.user_id = $1
		ORDER BY h.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	loans, err := r.queryLoansWithBook(ctx, query, borrowerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.QueryRow(ctx,
		`SELECT count(*) FROM book_transaction_history WHERE user_id = $1;`,
		borrowerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count loans by borrower: %w", err)
	}
	return loans, total, nil
}

func (r *PostgresLoanRepository) FindAllReturnedByOwner(ctx context.Context, ownerID, limit, offset int) ([]domain.Loan, int, error) {
	query := `
		SELECT h.id, h.book_id, h.user_id, h.returned, h.return_approved, h.created_at, h.updated_at,
		       b.id, b.owner_id, b.title, b.author_name, b.isbn, b.synopsis,
		       b.shareable, b.archived, b.rate, b.created_at, b.updated_at
		FROM book_transaction_history h
		JOIN books b ON b.id = h.book_id
		WHERE b.owner_id = $1 AND h.returned = true
		ORDER BY h.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	loans, err := r.queryLoansWithBook(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM book_transaction_history h
		JOIN books b ON b.id = h.book_id
		WHERE b.owner_id = $1 AND h.returned = true;
	`, ownerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count returned loans: %w", err)
	}
	return loans, total, nil
}

func (r *PostgresLoanRepository) queryLoansWithBook(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var (
			loan               domain.Loan
			book               domain.Book
			returned, approved bool
		)
		err := rows.Scan(
			&loan.ID, &loan.BookID, &loan.BorrowerID, &returned, &approved,
			&loan.CreatedAt, &loan.UpdatedAt,
			&book.ID, &book.OwnerID, &book.Title, &book.AuthorName, &book.ISBN,
			&book.Synopsis, &book.Shareable, &book.Archived, &book.Rate,
			&book.CreatedAt, &book.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loan.Status = decodeStatus(returned, approved)
		loan.Book = &book
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var (
		loan               domain.Loan
		returned, approved bool
	)
	err := row.Scan(&loan.ID, &loan.BookID, &loan.BorrowerID,
		&returned, &approved, &loan.CreatedAt, &loan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	loan.Status = decodeStatus(returned, approved)
	return &loan, nil
}

func encodeStatus(status domain.LoanStatus) (returned, approved bool) {
	switch status {
	case domain.LoanReturned:
		return true, false
	case domain.LoanReturnApproved:
		return true, true
	default:
		return false, false
	}
}

func decodeStatus(returned, approved bool) domain.LoanStatus {
	switch {
	case returned && approved:
		return domain.LoanReturnApproved
	case returned:
		return domain.LoanReturned
	default:
		return domain.LoanActive
	}
}
