package trackingid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id, err := Generate()
	require.NoError(t, err)
	assert.Len(t, id, ShortLength)
	assertAlphabet(t, id)
}

func TestGenerateLong(t *testing.T) {
	id, err := GenerateLong()
	require.NoError(t, err)
	assert.Len(t, id, LongLength)
	assertAlphabet(t, id)
}

func TestGenerate_NoImmediateRepeats(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := Generate()
		require.NoError(t, err)

		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func assertAlphabet(t *testing.T, id string) {
	t.Helper()
	for _, r := range id {
		assert.Contains(t, alphabet, string(r))
	}
}
