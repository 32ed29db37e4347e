package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	clock := &fixedClock{t: time.Now().UTC()}
	tokens := NewTokenService("secret", clock)

	token, err := tokens.Issue(42)
	require.NoError(t, err)
	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	anonymous, err := tokens.Issue(0)
	require.NoError(t, err)
	userID, err = tokens.Verify(anonymous)
	require.NoError(t, err)
	assert.Zero(t, userID)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenService("other", clock).Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := &fixedClock{t: clock.t.Add(2 * tokenTTL)}
		_, err := NewTokenService("secret", later).Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Verify("not-a-token")
		assert.Error(t, err)
	})
}
