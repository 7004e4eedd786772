package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Aranruth94/book-social-network/internal/book/domain"
	repo "github.com/Aranruth94/book-social-network/internal/book/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookColumns = []string{
	"id", "owner_id", "title", "author_name", "isbn", "synopsis",
	"shareable", "archived", "rate", "created_at", "updated_at",
}

func TestBookRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresBookRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM books WHERE id").
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows(bookColumns).
				AddRow(10, 1, "Title", "Author", "isbn", "syn", true, false, 4.2, now, now))

		book, err := r.GetByID(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, 10, book.ID)
		assert.Equal(t, 1, book.OwnerID)
		assert.True(t, book.Shareable)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM books WHERE id").
			WithArgs(10).
			WillReturnError(pgx.ErrNoRows)

		book, err := r.GetByID(ctx, 10)
		require.NoError(t, err)
		assert.Nil(t, book)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresBookRepository(mock)
	now := time.Now()

	book := &domain.Book{
		OwnerID:    1,
		Title:      "Title",
		AuthorName: "Author",
		Shareable:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	mock.ExpectQuery("INSERT INTO books").
		WithArgs(1, "Title", "Author", "", "", true, false, now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))

	err = r.Create(context.Background(), book)
	require.NoError(t, err)
	assert.Equal(t, 10, book.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresBookRepository(mock)

	book := &domain.Book{ID: 10, Title: "Title", AuthorName: "Author", Archived: true}
	mock.ExpectExec("UPDATE books").
		WithArgs(10, "Title", "Author", "", "", false, true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = r.Update(context.Background(), book)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_FindDisplayable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresBookRepository(mock)
	now := time.Now()

	mock.ExpectQuery("WHERE shareable = true AND archived = false AND owner_id").
		WithArgs(2, 10, 0).
		WillReturnRows(pgxmock.NewRows(bookColumns).
			AddRow(10, 1, "Title", "Author", "isbn", "syn", true, false, 4.2, now, now).
			AddRow(11, 3, "Other", "Author", "isbn", "syn", true, false, 3.1, now, now))
	mock.ExpectQuery("SELECT count").
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	books, total, err := r.FindDisplayable(context.Background(), 2, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, books, 2)
	assert.Equal(t, "Other", books[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}
