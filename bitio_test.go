package pfor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackWordsRoundTrip(t *testing.T) {
	widths := []int{0, 1, 4, 7, 13, 20, 32}
	for _, width := range widths {
		n := 37
		values := make([]uint32, n)
		mask := uint32(1)<<uint(width) - 1
		if width >= 32 {
			mask = ^uint32(0)
		}
		rng := rand.New(rand.NewSource(int64(width) + 1))
		for i := range values {
			values[i] = rng.Uint32() & mask
		}

		out := make([]uint32, wordsFor(n, width))
		written := packWords(out, values, n, width)
		require.Equal(t, len(out), written)

		dst := make([]uint32, n)
		unpackWords(dst, out, n, width)
		assert.Equal(t, values, dst, "width=%d", width)
	}
}

func TestWordsForZeroWidth(t *testing.T) {
	assert.Equal(t, 0, wordsFor(128, 0))
}

func TestRequiredWidth(t *testing.T) {
	assert.Equal(t, 0, requiredWidth(0))
	assert.Equal(t, 1, requiredWidth(1))
	assert.Equal(t, 8, requiredWidth(255))
	assert.Equal(t, 32, requiredWidth(0xFFFFFFFF))
}
