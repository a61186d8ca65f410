package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meatdirect/backend/internal/infrastructure/config"
)

func newTestService(secret string) *SessionTokenService {
	return NewSessionTokenService(&config.WholesaleConfig{SigningSecret: secret})
}

func TestSessionTokenService_RoundTrip(t *testing.T) {
	svc := newTestService("0123456789abcdef0123456789abcdef")
	keyID := uuid.New()

	token, err := svc.Generate(keyID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	got, err := claims.GetKeyUUID()
	require.NoError(t, err)
	assert.Equal(t, keyID, got)
}

func TestSessionTokenService_Expired(t *testing.T) {
	svc := newTestService("0123456789abcdef0123456789abcdef")

	token, err := svc.Generate(uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionTokenService_WrongSecret(t *testing.T) {
	svc := newTestService("0123456789abcdef0123456789abcdef")
	other := newTestService("ffffffffffffffffffffffffffffffff")

	token, err := svc.Generate(uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenService_Garbage(t *testing.T) {
	svc := newTestService("0123456789abcdef0123456789abcdef")

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
