package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	ok, err := h.Compare(ctx, hash, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(ctx, hash, "wrong horse")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_CancelledContext(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 1)

	// Занимаем единственный слот, чтобы Acquire ждал
	require.NoError(t, h.sem.Acquire(context.Background(), 1))
	defer h.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "password123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHasher_CompareDummy(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 1)
	assert.NoError(t, h.CompareDummy(context.Background(), "anything"))
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrWeakPassword)
	assert.NoError(t, ValidatePassword("longenough"))
}
