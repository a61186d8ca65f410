package wholesale

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/meatdirect/backend/internal/domain/shared"
)

// GenerateAccessCode generates a URL-safe code admins can share with
// approved customers
func GenerateAccessCode(length int) (string, error) {
	if length <= 0 {
		length = 14
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// AccessKey is a shared wholesale access code. The raw code is never
// stored, only its bcrypt hash.
type AccessKey struct {
	shared.BaseEntity
	Label      string
	CodeHash   string
	IsActive   bool
	ExpiresAt  *time.Time
	CreatedBy  string
	UsageCount int64
	LastUsedAt *time.Time
}

// NewAccessKey creates an active key for the given raw code
func NewAccessKey(label, rawCode, createdBy string, expiresAt *time.Time) (*AccessKey, error) {
	if rawCode == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Access code cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(rawCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AccessKey{
		BaseEntity: shared.NewBaseEntity(),
		Label:      label,
		CodeHash:   string(hash),
		IsActive:   true,
		ExpiresAt:  expiresAt,
		CreatedBy:  createdBy,
	}, nil
}

// IsExpired reports whether the key's own expiry has passed
func (k *AccessKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}

// CheckCode verifies a raw code against this key. Inactive and expired
// keys never match.
func (k *AccessKey) CheckCode(rawCode string, now time.Time) bool {
	if rawCode == "" || !k.IsActive || k.IsExpired(now) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(k.CodeHash), []byte(rawCode)) == nil
}

// RecordUse bumps the usage counter and last-used timestamp
func (k *AccessKey) RecordUse(now time.Time) {
	k.UsageCount++
	k.LastUsedAt = &now
	k.UpdatedAt = now
}

// TokenExpiry returns when a session minted against this key should
// expire: the default lifetime, capped by the key's own expiry
func (k *AccessKey) TokenExpiry(now time.Time, defaultLifetime time.Duration) time.Time {
	defaultExpiry := now.Add(defaultLifetime)
	if k.ExpiresAt != nil && k.ExpiresAt.Before(defaultExpiry) {
		return *k.ExpiresAt
	}
	return defaultExpiry
}
