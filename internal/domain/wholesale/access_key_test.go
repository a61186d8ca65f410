package wholesale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessCode(t *testing.T) {
	code, err := GenerateAccessCode(14)
	require.NoError(t, err)
	assert.NotEmpty(t, code)
	assert.NotContains(t, code, "+")
	assert.NotContains(t, code, "/")

	other, err := GenerateAccessCode(14)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestNewAccessKey_HashesCode(t *testing.T) {
	key, err := NewAccessKey("Restaurant partners", "super-secret", "admin", nil)

	require.NoError(t, err)
	assert.NotEqual(t, "super-secret", key.CodeHash)
	assert.True(t, key.IsActive)
}

func TestAccessKey_CheckCode(t *testing.T) {
	now := time.Now()
	key, err := NewAccessKey("Restaurant partners", "super-secret", "", nil)
	require.NoError(t, err)

	assert.True(t, key.CheckCode("super-secret", now))
	assert.False(t, key.CheckCode("wrong", now))
	assert.False(t, key.CheckCode("", now))
}

func TestAccessKey_CheckCode_InactiveOrExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	key, err := NewAccessKey("old", "super-secret", "", &past)
	require.NoError(t, err)
	assert.False(t, key.CheckCode("super-secret", now))

	key2, err := NewAccessKey("disabled", "super-secret", "", nil)
	require.NoError(t, err)
	key2.IsActive = false
	assert.False(t, key2.CheckCode("super-secret", now))
}

func TestAccessKey_RecordUse(t *testing.T) {
	key, err := NewAccessKey("k", "code", "", nil)
	require.NoError(t, err)

	now := time.Now()
	key.RecordUse(now)
	key.RecordUse(now)

	assert.Equal(t, int64(2), key.UsageCount)
	require.NotNil(t, key.LastUsedAt)
}

func TestAccessKey_TokenExpiry(t *testing.T) {
	now := time.Now()
	lifetime := 14 * 24 * time.Hour

	unbounded, err := NewAccessKey("k", "code", "", nil)
	require.NoError(t, err)
	assert.Equal(t, now.Add(lifetime), unbounded.TokenExpiry(now, lifetime))

	soon := now.Add(time.Hour)
	bounded, err := NewAccessKey("k", "code", "", &soon)
	require.NoError(t, err)
	assert.Equal(t, soon, bounded.TokenExpiry(now, lifetime))
}

func TestAccessRequest_Lifecycle(t *testing.T) {
	req, err := NewAccessRequest("Pat Smith", "pat@example.com", "", "Pat's Diner", "Weekly brisket order")
	require.NoError(t, err)
	assert.Equal(t, RequestStatusPending, req.Status)

	req.MarkDeclined("no capacity")
	assert.Equal(t, RequestStatusDeclined, req.Status)
	assert.Equal(t, "no capacity", req.AdminNotes)
	assert.NotNil(t, req.ResolvedAt)
}

func TestNewAccessRequest_Validation(t *testing.T) {
	_, err := NewAccessRequest("", "pat@example.com", "", "", "")
	assert.Error(t, err)

	_, err = NewAccessRequest("Pat Smith", "", "", "", "")
	assert.Error(t, err)
}
