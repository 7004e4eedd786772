package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aranruth94/book-social-network/internal/auth/domain"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
	"github.com/jackc/pgx/v5"
)

type PostgresTokenRepository struct {
	db Querier
}

func NewPostgresTokenRepository(db Querier) *PostgresTokenRepository {
	return &PostgresTokenRepository{db: db}
}

// FindByCode resolves a code to its newest token. Six-digit codes can repeat
// across issuances, so the most recent one wins.
func (r *PostgresTokenRepository) FindByCode(ctx context.Context, code string) (*domain.ActivationToken, error) {
	query := `
		SELECT id, code, user_id, created_at, expires_at, validated_at
		FROM activation_tokens
		WHERE code = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var token domain.ActivationToken
	err := r.db.QueryRow(ctx, query, code).Scan(
		&token.ID, &token.Code, &token.UserID,
		&token.CreatedAt, &token.ExpiresAt, &token.ValidatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find token by code: %w", err)
	}
	return &token, nil
}

func (r *PostgresTokenRepository) Save(ctx context.Context, token *domain.ActivationToken) error {
	query := `
		INSERT INTO activation_tokens (code, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		token.Code, token.UserID, token.CreatedAt, token.ExpiresAt,
	).Scan(&token.ID)
	if err != nil {
		return fmt.Errorf("failed to save activation token: %w", err)
	}
	return nil
}

// MarkValidated consumes the token. The conditional update makes consumption
// at-most-once even under concurrent activations; the loser sees zero rows.
func (r *PostgresTokenRepository) MarkValidated(ctx context.Context, tokenID int, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE activation_tokens
		SET validated_at = $2
		WHERE id = $1 AND validated_at IS NULL;
	`, tokenID, at)
	if err != nil {
		return fmt.Errorf("failed to mark token validated: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrTokenAlreadyUsed
	}
	return nil
}
