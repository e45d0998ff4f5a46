// Package simple16 implements a Simple16-style variable-width integer
// packing codec: each 32-bit word carries a 4-bit selector choosing one of
// 16 (count, width) layouts for the values that follow, picking the layout
// that packs the most values from the current position into that word.
//
// spec.md's glossary names Simple16 as "a variable-word packing scheme that
// chooses, per 32-bit word, one of 16 layouts describing how many integers
// of what width that word carries" but does not fix the exact per-selector
// table (unlike the container/header wire formats, this stream is produced
// and consumed only by this codec itself, never interpreted externally).
// The table below is this package's own construction -- see DESIGN.md for
// why the original per-selector table wasn't available to port -- built to
// the same shape: 15 uniform-width cases plus one escape case (selector 15)
// for a single value wider than the largest uniform case (28 bits), which
// spills the raw value into a second word. That escape matters here because
// callers (the pfor package's exception sideband) can hand this codec
// values up to the full 32-bit range.
package simple16

import "fmt"

// caseSpec describes one of the 16 per-word layouts: num values packed at
// bits each. The escape case (index 15) uses num=1 and stores its value
// in a second raw word; its bits field is unused.
type caseSpec struct {
	num  int
	bits int
}

// cases is ordered from most values per word (narrowest) to fewest
// (widest), so greedy selection can stop at the first case that fits.
var cases = [16]caseSpec{
	{28, 1},
	{14, 2},
	{9, 3},
	{7, 4},
	{5, 5},
	{4, 6},
	{4, 7},
	{3, 8},
	{3, 9},
	{2, 10},
	{2, 12},
	{2, 14},
	{1, 16},
	{1, 19},
	{1, 28},
	{1, 0}, // escape: raw value in the following word
}

const escapeSelector = 15

const (
	selectorBits  = 4
	selectorShift = 32 - selectorBits
	dataMask      = (uint32(1) << selectorShift) - 1
)

// ErrBufferTooSmall is returned when out cannot hold the encoded stream.
var ErrBufferTooSmall = fmt.Errorf("simple16: output buffer too small")

// ErrTruncated is returned when a decode input runs out of words before dst
// is filled.
var ErrTruncated = fmt.Errorf("simple16: truncated input")

// pickCase returns the index of the first case in table order whose num
// next values (starting at pos) all fit within its bit width, or
// escapeSelector if even the narrowest single-value case doesn't fit.
func pickCase(values []uint32, pos int) int {
	remaining := len(values) - pos
	for idx := 0; idx < escapeSelector; idx++ {
		c := cases[idx]
		if remaining < c.num {
			continue
		}
		if fitsAll(values[pos:pos+c.num], c.bits) {
			return idx
		}
	}
	return escapeSelector
}

func fitsAll(vs []uint32, bits int) bool {
	if bits >= 32 {
		return true
	}
	limit := uint32(1) << uint(bits)
	for _, v := range vs {
		if v >= limit {
			return false
		}
	}
	return true
}

// CostArray returns the number of 32-bit words EncodeArray would need to
// encode values, without allocating or writing any output. The OPT-PForDelta
// search (pfor.Encoder.costForWidth) relies on this being exactly the word
// count EncodeArray produces (spec.md §8, "Simple16 costing agreement").
func CostArray(values []uint32) int {
	words := 0
	pos := 0
	for pos < len(values) {
		idx := pickCase(values, pos)
		if idx == escapeSelector {
			words += 2
			pos++
			continue
		}
		words++
		pos += cases[idx].num
	}
	return words
}

// EncodeArray packs values into out, returning the number of words written.
func EncodeArray(values []uint32, out []uint32) (int, error) {
	need := CostArray(values)
	if len(out) < need {
		return 0, fmt.Errorf("%w: need %d words, have %d", ErrBufferTooSmall, need, len(out))
	}

	pos, outIdx := 0, 0
	for pos < len(values) {
		idx := pickCase(values, pos)
		if idx == escapeSelector {
			out[outIdx] = uint32(escapeSelector) << selectorShift
			outIdx++
			out[outIdx] = values[pos]
			outIdx++
			pos++
			continue
		}

		c := cases[idx]
		var word uint32
		var shift uint
		for i := 0; i < c.num; i++ {
			word |= values[pos+i] << shift
			shift += uint(c.bits)
		}
		word &= dataMask
		word |= uint32(idx) << selectorShift
		out[outIdx] = word
		outIdx++
		pos += c.num
	}
	return outIdx, nil
}

// DecodeArray reads Simple16-encoded words from src and writes exactly
// len(dst) decoded values into dst, returning the number of words consumed
// from src.
func DecodeArray(src []uint32, dst []uint32) (int, error) {
	need := len(dst)
	got, inIdx := 0, 0
	for got < need {
		if inIdx >= len(src) {
			return 0, ErrTruncated
		}
		word := src[inIdx]
		inIdx++
		idx := int(word >> selectorShift)

		if idx == escapeSelector {
			if inIdx >= len(src) {
				return 0, ErrTruncated
			}
			dst[got] = src[inIdx]
			inIdx++
			got++
			continue
		}

		c := cases[idx]
		data := word & dataMask
		mask := uint32(1)<<uint(c.bits) - 1
		for i := 0; i < c.num && got < need; i++ {
			dst[got] = data & mask
			data >>= uint(c.bits)
			got++
		}
	}
	return inIdx, nil
}
