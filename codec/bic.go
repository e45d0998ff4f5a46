package codec

import "math/bits"

// bicCodec implements Binary Interpolative Coding (encID 3). Unlike every
// other entry in the table, BIC operates directly on the raw ascending
// posting list rather than its gap transform (original_source/src/
// encoders.cpp special-cases E_BINARYIPL to skip the d-gap step, spec.md
// §4.4): each value is recursively bounded by its two already-encoded
// neighbors, so encoding the list's endpoints first lets every interior
// value be written in just enough bits to distinguish it from the shrinking
// range its neighbors leave behind.
//
// This is a simplified (fixed-width-per-range) variant of the algorithm:
// it always spends ceil(log2(rangeSize)) bits per interior value rather
// than the classic scheme's occasional rangeSize-aware short code, trading
// a little compression for a much smaller implementation.
type bicCodec struct{}

// NewBICCodec constructs the encID 3 codec.
func NewBICCodec() Codec {
	return bicCodec{}
}

func writeMinimalBinary(w *bitWriter, x, rangeSize uint32) {
	if rangeSize <= 1 {
		return
	}
	nb := bits.Len32(rangeSize - 1)
	w.writeBits(x, nb)
}

func readMinimalBinary(r *bitReader, rangeSize uint32) uint32 {
	if rangeSize <= 1 {
		return 0
	}
	nb := bits.Len32(rangeSize - 1)
	return r.readBits(nb)
}

func bicEncodeRange(w *bitWriter, values []uint32, lo, hi int, lowBound, highBound uint32) {
	if lo > hi {
		return
	}
	mid := (lo + hi) / 2
	rangeLow := lowBound + uint32(mid-lo)
	rangeHigh := highBound - uint32(hi-mid)
	writeMinimalBinary(w, values[mid]-rangeLow, rangeHigh-rangeLow+1)
	bicEncodeRange(w, values, lo, mid-1, lowBound, values[mid]-1)
	bicEncodeRange(w, values, mid+1, hi, values[mid]+1, highBound)
}

func bicDecodeRange(r *bitReader, values []uint32, lo, hi int, lowBound, highBound uint32) {
	if lo > hi {
		return
	}
	mid := (lo + hi) / 2
	rangeLow := lowBound + uint32(mid-lo)
	rangeHigh := highBound - uint32(hi-mid)
	values[mid] = rangeLow + readMinimalBinary(r, rangeHigh-rangeLow+1)
	bicDecodeRange(r, values, lo, mid-1, lowBound, values[mid]-1)
	bicDecodeRange(r, values, mid+1, hi, values[mid]+1, highBound)
}

func (bicCodec) EncodeArray(input, out []uint32) (int, error) {
	n := len(input)
	need := bicCodec{}.MaxEncodedWords(n)
	if len(out) < need {
		return 0, ErrBufferTooSmall
	}
	if n == 0 {
		return 0, nil
	}
	w := newBitWriter(out)
	w.writeBits(input[0], 32)
	if n == 1 {
		return w.flush(), nil
	}
	w.writeBits(input[n-1], 32)
	if n > 2 {
		bicEncodeRange(w, input, 1, n-2, input[0]+1, input[n-1]-1)
	}
	return w.flush(), nil
}

func (bicCodec) DecodeArray(input, out []uint32, n int) error {
	if n == 0 {
		return nil
	}
	r := newBitReader(input)
	out[0] = r.readBits(32)
	if n == 1 {
		return nil
	}
	out[n-1] = r.readBits(32)
	if n > 2 {
		bicDecodeRange(r, out, 1, n-2, out[0]+1, out[n-1]-1)
	}
	if r.overrun {
		return ErrTruncated
	}
	return nil
}

func (bicCodec) MaxEncodedWords(n int) int {
	if n == 0 {
		return 0
	}
	// Two 32-bit endpoints plus at most 32 bits per interior value.
	return (n*32+31)/32 + 1
}

func (bicCodec) ID() ID {
	return BinaryInterpolative
}

func (bicCodec) Ext() string {
	return BinaryInterpolative.Ext()
}
