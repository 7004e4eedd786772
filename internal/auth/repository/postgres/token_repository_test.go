package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Aranruth94/book-social-network/internal/auth/domain"
	repo "github.com/Aranruth94/book-social-network/internal/auth/repository/postgres"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenColumns = []string{"id", "code", "user_id", "created_at", "expires_at", "validated_at"}

func TestTokenRepository_FindByCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresTokenRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("FROM activation_tokens").
			WithArgs("123456").
			WillReturnRows(pgxmock.NewRows(tokenColumns).
				AddRow(42, "123456", 1, now, now.Add(15*time.Minute), nil))

		token, err := r.FindByCode(ctx, "123456")
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, 42, token.ID)
		assert.Nil(t, token.ValidatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("FROM activation_tokens").
			WithArgs("000000").
			WillReturnError(pgx.ErrNoRows)

		token, err := r.FindByCode(ctx, "000000")
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresTokenRepository(mock)
	now := time.Now()

	token := &domain.ActivationToken{
		Code:      "123456",
		UserID:    1,
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute),
	}
	mock.ExpectQuery("INSERT INTO activation_tokens").
		WithArgs("123456", 1, now, token.ExpiresAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

	err = r.Save(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 42, token.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_MarkValidated(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresTokenRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("consumes once", func(t *testing.T) {
		mock.ExpectExec("UPDATE activation_tokens").
			WithArgs(42, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := r.MarkValidated(ctx, 42, now)
		assert.NoError(t, err)
	})

	t.Run("already consumed", func(t *testing.T) {
		mock.ExpectExec("UPDATE activation_tokens").
			WithArgs(42, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := r.MarkValidated(ctx, 42, now)
		assert.ErrorIs(t, err, apperror.ErrTokenAlreadyUsed)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
