package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := GenerateToken(32)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		_, dup := seen[token]
		require.False(t, dup, "token %q generated twice", token)
		seen[token] = struct{}{}
	}
}

func TestGenerateTokenLength(t *testing.T) {
	token, err := GenerateToken(48)
	require.NoError(t, err)
	// 48 raw bytes encode to 64 base64 characters.
	require.Len(t, token, 64)
}
