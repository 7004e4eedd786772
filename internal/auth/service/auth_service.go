package service

import (
	"context"
	"time"

	"github.com/Aranruth94/book-social-network/internal/auth/domain"
	"github.com/Aranruth94/book-social-network/internal/auth/dto"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

const defaultRoleName = "USER"

type AuthService struct {
	users      domain.UserRepository
	activation ActivationIssuer
	tokens     TokenGenerator
}

func NewAuthService(users domain.UserRepository, activation ActivationIssuer, tokens TokenGenerator) *AuthService {
	return &AuthService{
		users:      users,
		activation: activation,
		tokens:     tokens,
	}
}

// Register creates a disabled user with the default role and issues an
// activation code. A missing default role is a configuration fault, not a
// user error.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) error {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.ErrEmailAlreadyInUse
	}

	role, err := s.users.GetRoleByName(ctx, defaultRoleName)
	if err != nil {
		return err
	}
	if role == nil {
		return apperror.ErrRoleNotConfigured
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Enabled:      false,
		Locked:       false,
		Roles:        []domain.Role{*role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	_, err = s.activation.Issue(ctx, user)
	return err
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if user.Locked {
		return nil, apperror.ErrAccountLocked
	}
	if !user.Enabled {
		return nil, apperror.ErrAccountDisabled
	}

	token, _, err := s.tokens.Generate(user.ID, user.Email, user.FullName())
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{AccessToken: token}, nil
}
