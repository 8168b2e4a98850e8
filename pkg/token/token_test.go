package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	key, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, key, KeyBytes*2)

	_, err = hex.DecodeString(key)
	assert.NoError(t, err, "key must be lowercase hex")
}

func TestGenerateUnique(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		key, err := gen.Generate()
		require.NoError(t, err)
		assert.False(t, seen[key], "generated a duplicate key")
		seen[key] = true
	}
}
