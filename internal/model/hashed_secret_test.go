package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashedSecret(t *testing.T) {
	h, err := HashSecret("sec")
	require.NoError(t, err)
	require.NotEqual(t, "sec", string(h))

	t.Run("correct secret", func(t *testing.T) {
		require.True(t, h.Matches("sec"))
	})

	t.Run("wrong secret", func(t *testing.T) {
		require.False(t, h.Matches("other"))
	})

	t.Run("malformed digest", func(t *testing.T) {
		require.False(t, HashedSecret("not-a-bcrypt-digest").Matches("sec"))
	})

	t.Run("hashes differ per call", func(t *testing.T) {
		h2, err := HashSecret("sec")
		require.NoError(t, err)
		require.NotEqual(t, h, h2)
		require.True(t, h2.Matches("sec"))
	})
}
