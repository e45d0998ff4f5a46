package pfor

import (
	"errors"
	"fmt"

	"github.com/invidx/pfor/simple16"
)

// ErrBufferTooSmall is returned when a caller-supplied output slice cannot
// hold the worst-case encoded size (spec.md §7, BufferTooSmall).
var ErrBufferTooSmall = errors.New("pfor: output buffer too small")

// ErrTruncated is returned when a decode input is shorter than the header
// claims.
var ErrTruncated = errors.New("pfor: truncated input")

// widthSelector picks the bit width a block should be packed at. OPT-PForDelta
// (optpfordelta.go) supplies a selector that searches the candidate set for
// the minimum-cost width; a plain, non-optimizing PForDelta selector can
// supply a cheaper heuristic. This is the "D drives C" coupling spec.md §2
// calls out: the selector is the only thing that differs between the two.
type widthSelector func(e *Encoder, values []uint32, n int) int

// Encoder holds the scratch buffers reused across every block encoded
// through it, so the hot path (the OPT-PForDelta candidate search, run once
// per block per candidate width) never allocates. Grounded on
// Akron-fastpfor-go/fastpfor.go's selectBitWidth, which takes a
// caller-scratch [BlockSize]exception array for the same reason
// (spec.md §9: "the single biggest performance-meaningful refactor").
//
// An Encoder is not safe for concurrent use; each goroutine encoding lists
// concurrently needs its own Encoder.
type Encoder struct {
	excPos   []uint32 // len BlockSize, raw exception positions for the width under evaluation
	excVal   []uint32 // len BlockSize, raw exception high bits (v >> b)
	combined []uint32 // len 2*BlockSize, transformed (positions, values) fed to simple16
}

// NewEncoder allocates an Encoder with its scratch buffers pre-sized to
// BlockSize. Reuse one Encoder across every block/list in a process.
func NewEncoder() *Encoder {
	return &Encoder{
		excPos:   make([]uint32, BlockSize),
		excVal:   make([]uint32, BlockSize),
		combined: make([]uint32, 2*BlockSize),
	}
}

// collectExceptions fills e.excPos/e.excVal with every value in values[:n]
// that doesn't fit in width bits, and returns the count. Mirrors
// OPTPForDelta.cpp's tryB exception-collection loop.
func (e *Encoder) collectExceptions(values []uint32, n, width int) int {
	if width >= 32 {
		return 0
	}
	k := 0
	limit := uint32(1) << uint(width)
	for i := 0; i < n; i++ {
		if values[i] >= limit {
			e.excPos[k] = uint32(i)
			e.excVal[k] = values[i] >> uint(width)
			k++
		}
	}
	return k
}

// transformExceptions rewrites the first k entries of e.excPos/e.excVal in
// place into e.combined, applying the position-delta and value-minus-one
// bias from spec.md §4.2/§9 (bit-for-bit matching OPTPForDelta.cpp's tryB
// second pass). Positions become: out[0] = pos[0], out[i] = pos[i] -
// pos[i-1] - 1 for i >= 1. Values become value - 1.
func (e *Encoder) transformExceptions(k int) {
	for i := k - 1; i >= 1; i-- {
		e.excPos[i] = e.excPos[i] - e.excPos[i-1] - 1
	}
	for i := 0; i < k; i++ {
		e.combined[i] = e.excPos[i]
		e.combined[k+i] = e.excVal[i] - 1
	}
}

// costForWidth implements spec.md §4.2's cost(b) exactly: ceil(N*b/32) plus
// the Simple16-encoded exception sideband, with no header term (the header
// word is constant across every candidate width and so doesn't affect which
// one is cheapest; it is added separately wherever a real buffer is sized).
func (e *Encoder) costForWidth(values []uint32, n, width int) int {
	if width >= 32 {
		return n
	}
	k := e.collectExceptions(values, n, width)
	cost := wordsFor(n, width)
	if k > 0 {
		e.transformExceptions(k)
		cost += simple16.CostArray(e.combined[:2*k])
	}
	return cost
}

// headerWords is the number of 32-bit words the block header occupies.
const headerWords = 1

// encodeBlockWithWidth writes a single block's header, packed payload and
// (if any) exception sideband into dst, given an already-chosen width.
// Returns the number of words written.
func (e *Encoder) encodeBlockWithWidth(dst []uint32, values []uint32, n, width int) (int, error) {
	k := 0
	if width < 32 {
		k = e.collectExceptions(values, n, width)
	}
	need := headerWords + wordsFor(n, width)
	if k > 0 {
		e.transformExceptions(k)
		need += simple16.CostArray(e.combined[:2*k])
	}
	if len(dst) < need {
		return 0, fmt.Errorf("%w: need %d words, have %d", ErrBufferTooSmall, need, len(dst))
	}

	firstPos := 0
	if k > 0 {
		firstPos = int(e.excPos[0])
	}
	dst[0] = encodeHeader(width, k, firstPos)

	payloadWords := packWords(dst[headerWords:], values, n, width)
	pos := headerWords + payloadWords

	if k > 0 {
		written, err := simple16.EncodeArray(e.combined[:2*k], dst[pos:])
		if err != nil {
			return 0, err
		}
		pos += written
	}
	return pos, nil
}

// encodeBlock chooses a width via selector and encodes values[:n] with it.
func (e *Encoder) encodeBlock(dst []uint32, values []uint32, n int, selector widthSelector) (int, error) {
	width := selector(e, values, n)
	return e.encodeBlockWithWidth(dst, values, n, width)
}

// decodeBlock reverses encodeBlockWithWidth, writing exactly the decoded
// block's logical value count into dst (the caller already knows that count
// from the outer framing, per spec.md §4.1) and returning the number of
// input words consumed.
func decodeBlock(dst []uint32, src []uint32, n int) (int, error) {
	if len(src) < headerWords {
		return 0, ErrTruncated
	}
	width, numExc, firstPos := decodeHeader(src[0])
	payloadWords := wordsFor(n, width)
	if len(src) < headerWords+payloadWords {
		return 0, ErrTruncated
	}
	unpackWords(dst[:n], src[headerWords:headerWords+payloadWords], n, width)
	pos := headerWords + payloadWords

	if numExc > 0 {
		var combined [2 * BlockSize]uint32
		consumed, err := simple16.DecodeArray(src[pos:], combined[:2*numExc])
		if err != nil {
			return 0, err
		}
		pos += consumed

		position := firstPos
		for i := 0; i < numExc; i++ {
			if i > 0 {
				position += int(combined[i]) + 1
			}
			high := combined[numExc+i] + 1
			dst[position] |= high << uint(width)
		}
	}
	return pos, nil
}
