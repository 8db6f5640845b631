package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchType(t *testing.T) {
	t.Run("accepts known types", func(t *testing.T) {
		for _, s := range []string{"comprehensive", "keyword", "conceptual", "fuzzy"} {
			st, err := ParseSearchType(s)
			require.NoError(t, err)
			assert.Equal(t, SearchType(s), st)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := ParseSearchType("semantic")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("rejects empty type", func(t *testing.T) {
		_, err := ParseSearchType("")
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}
