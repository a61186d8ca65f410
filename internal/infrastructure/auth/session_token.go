package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrMissingKeyID  = errors.New("missing key_id in claims")
)

// SessionClaims carries the wholesale session state inside the cookie
type SessionClaims struct {
	jwt.RegisteredClaims
	KeyID string `json:"key_id"`
}

// GetKeyUUID extracts and parses the access key id from claims
func (c *SessionClaims) GetKeyUUID() (uuid.UUID, error) {
	return uuid.Parse(c.KeyID)
}

// SessionTokenService signs and validates wholesale session tokens
type SessionTokenService struct {
	secret []byte
}

// NewSessionTokenService creates a new session token service
func NewSessionTokenService(cfg *config.WholesaleConfig) *SessionTokenService {
	return &SessionTokenService{secret: []byte(cfg.SigningSecret)}
}

// Generate creates a signed session token bound to an access key
func (s *SessionTokenService) Generate(keyID uuid.UUID, expiresAt time.Time) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   keyID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		KeyID: keyID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks a session token and returns its claims.
// Expired tokens return ErrExpiredToken so callers can distinguish a lapsed
// session from a forged one.
func (s *SessionTokenService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.KeyID == "" {
		return nil, ErrMissingKeyID
	}

	return claims, nil
}
