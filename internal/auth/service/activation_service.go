package service

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/Aranruth94/book-social-network/internal/auth/domain"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
)

const activationCodeCharset = "0123456789"

// ActivationIssuer issues a fresh activation token for a user and sends it
// out. RegistrationFlow and the expired-token path both go through it.
type ActivationIssuer interface {
	Issue(ctx context.Context, user *domain.User) (*domain.ActivationToken, error)
}

type ActivationService struct {
	users      domain.UserRepository
	tokens     domain.TokenRepository
	notifier   domain.Notifier
	tokenTTL   time.Duration
	codeLength int
	now        func() time.Time
}

func NewActivationService(
	users domain.UserRepository,
	tokens domain.TokenRepository,
	notifier domain.Notifier,
	ttlMinutes, codeLength int,
) *ActivationService {
	return &ActivationService{
		users:      users,
		tokens:     tokens,
		notifier:   notifier,
		tokenTTL:   time.Duration(ttlMinutes) * time.Minute,
		codeLength: codeLength,
		now:        time.Now,
	}
}

// Issue generates a single-use numeric code, persists it with the configured
// TTL and emails it to the user. The token is committed before delivery is
// attempted; a delivery failure surfaces as NotificationError so the caller
// can retry issuance without losing the audit trail.
func (s *ActivationService) Issue(ctx context.Context, user *domain.User) (*domain.ActivationToken, error) {
	code, err := generateActivationCode(s.codeLength)
	if err != nil {
		return nil, err
	}

	now := s.now()
	token := &domain.ActivationToken{
		Code:      code,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	if err := s.tokens.Save(ctx, token); err != nil {
		return nil, err
	}

	if err := s.notifier.SendActivationCode(ctx, user, code); err != nil {
		slog.Warn("activation code delivery failed", "user_id", user.ID, "error", err)
		return token, &apperror.NotificationError{Err: err}
	}

	return token, nil
}

// Activate consumes the token identified by code and enables its owner.
// An expired token triggers exactly one re-issue for the same user before
// failing, so the caller can tell the user a new code was sent.
func (s *ActivationService) Activate(ctx context.Context, code string) error {
	token, err := s.tokens.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if token == nil {
		return apperror.ErrTokenNotFound
	}

	now := s.now()
	if token.Expired(now) {
		user, err := s.users.GetByID(ctx, token.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.ErrUserNotFound
		}
		if _, err := s.Issue(ctx, user); err != nil {
			return err
		}
		return apperror.ErrTokenExpired
	}

	if token.ValidatedAt != nil {
		return apperror.ErrTokenAlreadyUsed
	}

	// The store enforces at-most-once consumption; a concurrent winner makes
	// this return ErrTokenAlreadyUsed.
	if err := s.tokens.MarkValidated(ctx, token.ID, now); err != nil {
		return err
	}

	return s.users.Enable(ctx, token.UserID)
}

func generateActivationCode(length int) (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(activationCodeCharset)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(activationCodeCharset[n.Int64()])
	}
	return sb.String(), nil
}
