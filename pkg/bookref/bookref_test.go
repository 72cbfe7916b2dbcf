package bookref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		ref, err := New()
		require.NoError(t, err)

		assert.Len(t, ref, Length)
		for _, r := range ref {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q in ref %s", r, ref)
		}
		seen[ref] = true
	}

	assert.Greater(t, len(seen), 90, "refs should be effectively unique")
}

func TestAlphabetExcludesAmbiguousRunes(t *testing.T) {
	for _, r := range "0O1IL" {
		assert.NotContains(t, alphabet, string(r))
	}
}
