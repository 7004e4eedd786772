package domain

//go:generate mockgen -destination=../../mocks/mock_auth_repository.go -package=mocks github.com/Aranruth94/book-social-network/internal/auth/domain UserRepository,TokenRepository,Notifier

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, user *User) error
	Enable(ctx context.Context, userID int) error
	GetRoleByName(ctx context.Context, name string) (*Role, error)
}

type TokenRepository interface {
	FindByCode(ctx context.Context, code string) (*ActivationToken, error)
	Save(ctx context.Context, token *ActivationToken) error
	// MarkValidated sets validated_at for the token iff it has not been
	// validated before; returns ErrTokenAlreadyUsed otherwise.
	MarkValidated(ctx context.Context, tokenID int, at time.Time) error
}

type Notifier interface {
	SendActivationCode(ctx context.Context, user *User, code string) error
}
