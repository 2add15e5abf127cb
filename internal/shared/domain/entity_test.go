package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/tascora/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEntity(t *testing.T) {
	before := time.Now().UTC()
	entity := domain.NewBaseEntity()
	after := time.Now().UTC()

	assert.NotEqual(t, uuid.Nil, entity.ID())
	assert.False(t, entity.CreatedAt().Before(before))
	assert.False(t, entity.CreatedAt().After(after))
	assert.Equal(t, entity.CreatedAt(), entity.UpdatedAt())
}

func TestRehydrateBaseEntity(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	entity := domain.RehydrateBaseEntity(id, createdAt, updatedAt)

	assert.Equal(t, id, entity.ID())
	assert.Equal(t, createdAt, entity.CreatedAt())
	assert.Equal(t, updatedAt, entity.UpdatedAt())
}

func TestBaseEntity_Touch(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	entity := domain.RehydrateBaseEntity(uuid.New(), createdAt, createdAt)

	entity.Touch()

	assert.Equal(t, createdAt, entity.CreatedAt())
	assert.True(t, entity.UpdatedAt().After(createdAt))
}

func TestBaseEntity_Equals(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	a := domain.RehydrateBaseEntity(id, now, now)
	b := domain.RehydrateBaseEntity(id, now.Add(time.Hour), now.Add(time.Hour))
	c := domain.NewBaseEntity()

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}
