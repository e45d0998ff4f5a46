package pfor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeDecodeRoundTrip(t *testing.T, values []uint32) []uint32 {
	t.Helper()
	e := NewEncoder()
	out := make([]uint32, MaxEncodedWords(len(values)))
	n, err := e.EncodeArray(values, out)
	require.NoError(t, err)

	dst := make([]uint32, len(values))
	err = DecodeArray(out[:n], dst, len(values))
	require.NoError(t, err)
	return dst
}

func TestScenario_IdentitySequence(t *testing.T) {
	// spec.md §8 scenario 3: gaps all 0 (e.g. a contiguous run), b should
	// settle at 0 with a zero-word payload and no exceptions.
	values := make([]uint32, 128)
	e := NewEncoder()
	out := make([]uint32, MaxEncodedWords(len(values)))
	n, err := e.EncodeArray(values, out)
	require.NoError(t, err)
	// 1 (block count) + 1 (header), zero payload words, zero exceptions.
	assert.Equal(t, 2, n)

	dst := make([]uint32, len(values))
	require.NoError(t, DecodeArray(out[:n], dst, len(values)))
	assert.Equal(t, values, dst)
}

func TestScenario_SingleOutlier(t *testing.T) {
	// spec.md §8 scenario 4: gaps [0,0,0,999995] -- the outlier should end
	// up in the exception stream and the round trip must be exact.
	gaps := []uint32{0, 0, 0, 999995}
	dst := encodeDecodeRoundTrip(t, gaps)
	assert.Equal(t, gaps, dst)
}

func TestScenario_SmallPForDeltaBlock(t *testing.T) {
	// spec.md §8 scenario 2, expressed directly on the gap list [9, 9]
	// (the caller gap-transforms [10, 20, 30] itself; see gapcoding tests
	// for that half of the round trip).
	gaps := []uint32{9, 9}
	dst := encodeDecodeRoundTrip(t, gaps)
	assert.Equal(t, gaps, dst)
}

func TestRoundTripRandomizedBlocks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		n := rng.Intn(400) + 1
		values := make([]uint32, n)
		for i := range values {
			switch rng.Intn(5) {
			case 0:
				values[i] = 0
			case 1:
				values[i] = uint32(rng.Intn(16))
			case 2:
				values[i] = uint32(rng.Intn(1 << 20))
			case 3:
				values[i] = rng.Uint32()
			default:
				values[i] = uint32(rng.Intn(1 << 30))
			}
		}
		dst := encodeDecodeRoundTrip(t, values)
		assert.Equal(t, values, dst, "trial %d, n=%d", trial, n)
	}
}

func TestRoundTripMultipleBlocks(t *testing.T) {
	n := BlockSize*3 + 17
	values := make([]uint32, n)
	rng := rand.New(rand.NewSource(9))
	for i := range values {
		values[i] = uint32(rng.Intn(1 << 12))
	}
	values[BlockSize+5] = 0xFFFFFFFE // one very large exception mid-stream
	dst := encodeDecodeRoundTrip(t, values)
	assert.Equal(t, values, dst)
}

func TestOptimalityOverCandidates(t *testing.T) {
	// spec.md §8: the chosen b must equal the true argmin over Candidates.
	rng := rand.New(rand.NewSource(123))
	e := NewEncoder()
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(BlockSize) + 1
		values := make([]uint32, n)
		for i := range values {
			values[i] = uint32(rng.Intn(1 << 22))
		}

		chosen := SelectBestWidth(e, values, n)
		chosenCost := e.costForWidth(values, n, chosen)

		for _, c := range Candidates {
			cost := e.costForWidth(values, n, c)
			if c == chosen {
				continue
			}
			if cost < chosenCost {
				t.Fatalf("candidate %d (cost %d) beats chosen %d (cost %d)", c, cost, chosen, chosenCost)
			}
			if cost == chosenCost && c < chosen {
				t.Fatalf("tie-break should prefer smaller width: %d should have won over %d", c, chosen)
			}
		}
	}
}

func TestPlainPForDeltaRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	e := NewEncoder()
	n := 300
	values := make([]uint32, n)
	for i := range values {
		values[i] = uint32(rng.Intn(1 << 10))
	}
	values[150] = 1 << 25 // outlier beyond the 90th percentile width

	out := make([]uint32, MaxEncodedWords(n))
	written, err := e.EncodeArrayPlain(values, out)
	require.NoError(t, err)

	dst := make([]uint32, n)
	require.NoError(t, DecodeArray(out[:written], dst, n))
	assert.Equal(t, values, dst)
}

func TestEmptyList(t *testing.T) {
	dst := encodeDecodeRoundTrip(t, nil)
	assert.Empty(t, dst)
}
