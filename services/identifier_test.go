package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIdentifierLength(t *testing.T) {
	id, err := generateIdentifier(nil)
	require.NoError(t, err)
	assert.Len(t, id, identifierLength)
}

func TestGenerateIdentifierCharset(t *testing.T) {
	id, err := generateIdentifier(nil)
	require.NoError(t, err)
	for _, r := range id {
		valid := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
		assert.True(t, valid, "unexpected character %q in identifier", r)
	}
}

func TestGenerateIdentifierRespectsExclusion(t *testing.T) {
	exclude := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		id, err := generateIdentifier(exclude)
		require.NoError(t, err)
		_, taken := exclude[id]
		assert.False(t, taken, "generated identifier collided with exclusion set")
		exclude[id] = struct{}{}
	}
}
