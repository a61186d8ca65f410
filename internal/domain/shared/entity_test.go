package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEntity(t *testing.T) {
	e := NewBaseEntity()

	assert.NotEqual(t, uuid.Nil, e.GetID())
	assert.False(t, e.GetCreatedAt().IsZero())
	assert.Equal(t, e.GetCreatedAt(), e.GetUpdatedAt())
}

func TestBaseEntity_Touch(t *testing.T) {
	e := NewBaseEntity()
	before := e.GetUpdatedAt()

	time.Sleep(time.Millisecond)
	e.Touch()

	assert.True(t, e.GetUpdatedAt().After(before))
	assert.Equal(t, e.GetCreatedAt(), e.CreatedAt)
}

func TestRestoreBaseEntity(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	e := RestoreBaseEntity(id, created, updated)

	require.Equal(t, id, e.GetID())
	assert.Equal(t, created, e.GetCreatedAt())
	assert.Equal(t, updated, e.GetUpdatedAt())
}
