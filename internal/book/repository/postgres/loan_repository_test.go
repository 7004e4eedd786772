package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Aranruth94/book-social-network/internal/book/domain"
	repo "github.com/Aranruth94/book-social-network/internal/book/repository/postgres"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loanColumns = []string{"id", "book_id", "user_id", "returned", "return_approved", "created_at", "updated_at"}

func TestLoanRepository_FindActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresLoanRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, book_id, user_id").
			WithArgs(10, 2).
			WillReturnRows(pgxmock.NewRows(loanColumns).
				AddRow(5, 10, 2, false, false, now, now))

		loan, err := r.FindActive(ctx, 10, 2)
		require.NoError(t, err)
		require.NotNil(t, loan)
		assert.Equal(t, 5, loan.ID)
		assert.Equal(t, domain.LoanActive, loan.Status)
	})

	t.Run("none", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, book_id, user_id").
			WithArgs(10, 2).
			WillReturnError(pgx.ErrNoRows)

		loan, err := r.FindActive(ctx, 10, 2)
		require.NoError(t, err)
		assert.Nil(t, loan)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, book_id, user_id").
			WithArgs(10, 2).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.FindActive(ctx, 10, 2)
		assert.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_FindReturnedPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresLoanRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("JOIN books b ON b.id = h.book_id").
			WithArgs(10, 1).
			WillReturnRows(pgxmock.NewRows(loanColumns).
				AddRow(5, 10, 2, true, false, now, now))

		loan, err := r.FindReturnedPending(ctx, 10, 1)
		require.NoError(t, err)
		require.NotNil(t, loan)
		assert.Equal(t, domain.LoanReturned, loan.Status)
	})

	t.Run("none", func(t *testing.T) {
		mock.ExpectQuery("JOIN books b ON b.id = h.book_id").
			WithArgs(10, 1).
			WillReturnError(pgx.ErrNoRows)

		loan, err := r.FindReturnedPending(ctx, 10, 1)
		require.NoError(t, err)
		assert.Nil(t, loan)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresLoanRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		loan := &domain.Loan{BookID: 10, BorrowerID: 2, Status: domain.LoanActive}
		mock.ExpectQuery("INSERT INTO book_transaction_history").
			WithArgs(10, 2, false, false).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(5, now, now))

		err := r.Create(ctx, loan)
		require.NoError(t, err)
		assert.Equal(t, 5, loan.ID)
	})

	t.Run("unique violation maps to already borrowed", func(t *testing.T) {
		loan := &domain.Loan{BookID: 10, BorrowerID: 2, Status: domain.LoanActive}
		mock.ExpectQuery("INSERT INTO book_transaction_history").
			WithArgs(10, 2, false, false).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_active_loan"})

		err := r.Create(ctx, loan)
		assert.ErrorIs(t, err, apperror.ErrAlreadyBorrowed)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresLoanRepository(mock)

	loan := &domain.Loan{ID: 5, BookID: 10, BorrowerID: 2, Status: domain.LoanReturnApproved}
	mock.ExpectExec("UPDATE book_transaction_history").
		WithArgs(5, true, true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = r.Update(context.Background(), loan)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_FindAllByBorrower(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresLoanRepository(mock)
	now := time.Now()

	joinedColumns := []string{
		"id", "book_id", "user_id", "returned", "return_approved", "created_at", "updated_at",
		"b_id", "owner_id", "title", "author_name", "isbn", "synopsis",
		"shareable", "archived", "rate", "b_created_at", "b_updated_at",
	}
	mock.ExpectQuery("FROM book_transaction_history h").
		WithArgs(2, 10, 0).
		WillReturnRows(pgxmock.NewRows(joinedColumns).
			AddRow(5, 10, 2, true, false, now, now,
				10, 1, "Title", "Author", "isbn", "syn", true, false, 4.0, now, now))
	mock.ExpectQuery("SELECT count").
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	loans, total, err := r.FindAllByBorrower(context.Background(), 2, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, loans, 1)
	assert.Equal(t, domain.LoanReturned, loans[0].Status)
	require.NotNil(t, loans[0].Book)
	assert.Equal(t, "Title", loans[0].Book.Title)

	require.NoError(t, mock.ExpectationsWereMet())
}
