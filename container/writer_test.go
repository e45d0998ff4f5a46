package container

import (
	"encoding/binary"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/invidx/pfor/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInputBytes(lists [][]uint32) []byte {
	var buf []byte
	var word [4]byte
	putWord := func(v uint32) {
		binary.LittleEndian.PutUint32(word[:], v)
		buf = append(buf, word[:]...)
	}
	for _, list := range lists {
		putWord(uint32(len(list)))
		for _, v := range list {
			putWord(v)
		}
	}
	return buf
}

func randomAscendingLists(rng *rand.Rand, count int) [][]uint32 {
	lists := make([][]uint32, count)
	for i := range lists {
		n := rng.Intn(300) + 2
		list := make([]uint32, n)
		cur := uint32(0)
		for j := range list {
			cur += uint32(rng.Intn(40)) + 1
			list[j] = cur
		}
		lists[i] = list
	}
	return lists
}

func TestWriterReaderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lists := randomAscendingLists(rng, 60)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	require.NoError(t, os.WriteFile(inputPath, buildInputBytes(lists), 0o644))

	opts := DefaultOptions()
	w, err := NewWriter(codec.OPTPForDelta, opts, nil)
	require.NoError(t, err)

	cmpPath := filepath.Join(dir, "input.bin.optpfd")
	tocPath := cmpPath + ".TOC"
	require.NoError(t, w.Run(inputPath, cmpPath, tocPath, false))

	r, err := Open(cmpPath, tocPath, codec.OPTPForDelta)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, len(lists), r.Len())
	for i, want := range lists {
		got, err := r.Decode(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "list %d", i)
	}
}

func TestWriterSkipsOutOfRangeLists(t *testing.T) {
	lists := [][]uint32{
		{5},              // len 1 <= default SkipThreshold(1): skipped
		{1, 2, 3},        // kept
		{10, 20, 30, 40}, // kept
	}
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	require.NoError(t, os.WriteFile(inputPath, buildInputBytes(lists), 0o644))

	opts := DefaultOptions()
	w, err := NewWriter(codec.OPTPForDelta, opts, nil)
	require.NoError(t, err)

	cmpPath := filepath.Join(dir, "input.bin.optpfd")
	tocPath := cmpPath + ".TOC"
	require.NoError(t, w.Run(inputPath, cmpPath, tocPath, false))

	r, err := Open(cmpPath, tocPath, codec.OPTPForDelta)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, 2, r.Len())
}

func TestEmptyInputProducesHeaderOnlyTOC(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	require.NoError(t, os.WriteFile(inputPath, nil, 0o644))

	opts := DefaultOptions()
	w, err := NewWriter(codec.OPTPForDelta, opts, nil)
	require.NoError(t, err)

	cmpPath := filepath.Join(dir, "input.bin.optpfd")
	tocPath := cmpPath + ".TOC"
	require.NoError(t, w.Run(inputPath, cmpPath, tocPath, false))

	cmpInfo, err := os.Stat(cmpPath)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cmpInfo.Size())

	tocInfo, err := os.Stat(tocPath)
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderBytes), tocInfo.Size())
}

func TestBinaryInterpolativeSkipsGapTransform(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	lists := randomAscendingLists(rng, 10)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	require.NoError(t, os.WriteFile(inputPath, buildInputBytes(lists), 0o644))

	opts := DefaultOptions()
	w, err := NewWriter(codec.BinaryInterpolative, opts, nil)
	require.NoError(t, err)

	cmpPath := filepath.Join(dir, "input.bin.bic")
	tocPath := cmpPath + ".TOC"
	require.NoError(t, w.Run(inputPath, cmpPath, tocPath, false))

	r, err := Open(cmpPath, tocPath, codec.BinaryInterpolative)
	require.NoError(t, err)
	defer r.Close()

	for i, want := range lists {
		got, err := r.Decode(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "list %d", i)
	}
}

func TestOrderingViolationWarnsAndStillEncodes(t *testing.T) {
	lists := [][]uint32{{5, 3, 9}} // non-ascending at index 1
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.bin")
	require.NoError(t, os.WriteFile(inputPath, buildInputBytes(lists), 0o644))

	var logged []string
	logger := log.New(logWriter(func(p []byte) { logged = append(logged, string(p)) }), "", 0)

	opts := DefaultOptions()
	w, err := NewWriter(codec.OPTPForDelta, opts, logger)
	require.NoError(t, err)

	cmpPath := filepath.Join(dir, "input.bin.optpfd")
	tocPath := cmpPath + ".TOC"
	require.NoError(t, w.Run(inputPath, cmpPath, tocPath, false))
	assert.NotEmpty(t, logged)

	r, err := Open(cmpPath, tocPath, codec.OPTPForDelta)
	require.NoError(t, err)
	defer r.Close()
	_, err = r.Decode(0)
	require.NoError(t, err) // round trip must still succeed despite the warning
}

type logWriter func(p []byte)

func (f logWriter) Write(p []byte) (int, error) {
	f(p)
	return len(p), nil
}

func fileHash(t *testing.T, path string) uint64 {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return xxhash.Sum64(data)
}

func TestResumeIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	lists := randomAscendingLists(rng, 40)
	full := buildInputBytes(lists)

	dir := t.TempDir()
	fullInputPath := filepath.Join(dir, "full.bin")
	require.NoError(t, os.WriteFile(fullInputPath, full, 0o644))

	opts := DefaultOptions()
	opts.CheckpointInterval = 1

	// One-shot run over the complete input.
	oneShot, err := NewWriter(codec.OPTPForDelta, opts, nil)
	require.NoError(t, err)
	cmpOneShot := filepath.Join(dir, "oneshot.optpfd")
	tocOneShot := cmpOneShot + ".TOC"
	require.NoError(t, oneShot.Run(fullInputPath, cmpOneShot, tocOneShot, false))

	// Simulate a crash partway through: encode only the first half of the
	// lists (an exact prefix of the same byte stream), then resume against
	// the full input.
	half := buildInputBytes(lists[:len(lists)/2])
	partialInputPath := filepath.Join(dir, "partial.bin")
	require.NoError(t, os.WriteFile(partialInputPath, half, 0o644))

	resumed, err := NewWriter(codec.OPTPForDelta, opts, nil)
	require.NoError(t, err)
	cmpResumed := filepath.Join(dir, "resumed.optpfd")
	tocResumed := cmpResumed + ".TOC"
	require.NoError(t, resumed.Run(partialInputPath, cmpResumed, tocResumed, false))
	require.NoError(t, resumed.Run(fullInputPath, cmpResumed, tocResumed, true))

	assert.Equal(t, fileHash(t, cmpOneShot), fileHash(t, cmpResumed))
	assert.Equal(t, fileHash(t, tocOneShot), fileHash(t, tocResumed))
}
