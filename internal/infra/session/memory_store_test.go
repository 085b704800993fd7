package session

import (
	"context"
	"testing"
	"time"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(id string) *entity.Session {
	return &entity.Session{
		ID:        id,
		Token:     "token-" + id,
		User:      entity.User{ID: 1, Username: "asha", Role: entity.RoleCustomer},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession("abc")))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", got.Token)
	assert.Equal(t, "asha", got.User.Username)

	require.NoError(t, s.Delete(ctx, "abc"))
	_, err = s.Load(ctx, "abc")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	// Deleting an absent record is not an error.
	assert.NoError(t, s.Delete(ctx, "never-existed"))
}

func TestMemoryStore_ExpiredRecordIsGone(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	expired := testSession("old")
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, s.Save(ctx, expired))

	_, err := s.Load(ctx, "old")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestMemoryStore_CorruptedRecord(t *testing.T) {
	s := NewMemoryStore().(*memoryStore)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession("abc")))
	s.Corrupt("abc")

	_, err := s.Load(ctx, "abc")
	assert.ErrorIs(t, err, store.ErrSessionCorrupted)
}
