package service_test

import (
	"testing"
	"time"

	"github.com/Aranruth94/book-social-network/internal/auth/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := service.NewTokenService("test-secret", 60)

	token, expiresAt, err := ts.Generate(7, "jane@example.com", "Jane Doe")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane Doe", claims.FullName)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	ts := service.NewTokenService("test-secret", 60)
	other := service.NewTokenService("other-secret", 60)

	token, _, err := ts.Generate(7, "jane@example.com", "Jane Doe")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := service.NewTokenService("test-secret", 60)
	ts.Expiry = -time.Minute

	token, _, err := ts.Generate(7, "jane@example.com", "Jane Doe")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	ts := service.NewTokenService("test-secret", 60)

	_, err := ts.Verify("not.a.jwt")
	assert.Error(t, err)
}
