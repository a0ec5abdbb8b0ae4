package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	s, ok := Lookup("AAPLx")
	require.True(t, ok)
	assert.Equal(t, "Apple", s.Name)
	assert.Equal(t, "XsbEhLAtcf6HdfpFZ5xEMdqW8nfAvcsP5bdudRLJzJp", s.Mint)

	_, ok = Lookup("FAKEx")
	assert.False(t, ok)
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	syms := Symbols()
	assert.Len(t, syms, 10)
	assert.True(t, sort.StringsAreSorted(syms))

	for _, sym := range syms {
		s, ok := Lookup(sym)
		require.True(t, ok)
		assert.Equal(t, sym, s.Symbol)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Mint)
	}
}
