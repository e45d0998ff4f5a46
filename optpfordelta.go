package pfor

// Candidates is the fixed bit-width search space OPT-PForDelta evaluates
// for every block. spec.md §9 calls this out as configuration data, not
// code; it is a package-level constant slice rather than a literal baked
// into the search loop so it's visible to tests.
var Candidates = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 16, 20, 32}

// SelectBestWidth implements OPT-PForDelta's findBestB: it tries every
// candidate width in Candidates (in order) and returns the one minimizing
// costForWidth, breaking ties toward the smaller width. spec.md §9 flags the
// source's tie-break (<=, preferring the later/larger candidate) as almost
// certainly unintentional and recommends strict "<" instead, preferring
// smaller b (cheaper to decode) on an exact tie; this implementation takes
// that recommendation.
func SelectBestWidth(e *Encoder, values []uint32, n int) int {
	// Start above the width-32 cost (n) so that width 32, which is itself
	// the last candidate, only wins when no smaller width is as cheap.
	bestWidth := 32
	bestCost := n + 1
	for _, c := range Candidates {
		cost := e.costForWidth(values, n, c)
		if cost < bestCost {
			bestCost = cost
			bestWidth = c
		}
	}
	return bestWidth
}

// EncodeArray is the OPT-PForDelta codec entry point (spec.md §4.1's
// encode_array): it gap-list input (already gap-transformed by the caller,
// see gapcoding) is split into BlockSize blocks, each packed at its own
// per-block optimal width, and returns the number of 32-bit words written
// to out, which must start with the block count (spec.md §3, EncodedList).
func (e *Encoder) EncodeArray(values []uint32, out []uint32) (int, error) {
	return e.encodeList(values, out, SelectBestWidth)
}

// DecodeArray is the OPT-PForDelta codec entry point (spec.md §4.1's
// decode_array). n is the number of logical values the caller expects back
// (known out-of-band from the TOC), matching spec.md §4.2's decoding rule:
// plain PForDelta decoding applies regardless of which selector produced
// the stream, since the width is read from each block's own header.
func DecodeArray(src []uint32, out []uint32, n int) error {
	return decodeList(src, out, n)
}

// encodeList is shared by the OPT-PForDelta and plain PForDelta codecs; only
// the width selector differs between them (spec.md §2: "D drives C").
func (e *Encoder) encodeList(values []uint32, out []uint32, selector widthSelector) (int, error) {
	n := len(values)
	numBlocks := (n + BlockSize - 1) / BlockSize
	if numBlocks == 0 {
		if len(out) < 1 {
			return 0, ErrBufferTooSmall
		}
		out[0] = 0
		return 1, nil
	}
	if len(out) < 1 {
		return 0, ErrBufferTooSmall
	}
	out[0] = uint32(numBlocks)
	pos := 1

	for b := 0; b < numBlocks; b++ {
		start := b * BlockSize
		end := start + BlockSize
		if end > n {
			end = n
		}
		written, err := e.encodeBlock(out[pos:], values[start:end], end-start, selector)
		if err != nil {
			return 0, err
		}
		pos += written
	}
	return pos, nil
}

// decodeList reverses encodeList.
func decodeList(src []uint32, out []uint32, n int) error {
	if len(src) < 1 {
		return ErrTruncated
	}
	numBlocks := int(src[0])
	pos := 1

	written := 0
	for b := 0; b < numBlocks; b++ {
		remaining := n - written
		blockLen := BlockSize
		if remaining < blockLen {
			blockLen = remaining
		}
		consumed, err := decodeBlock(out[written:written+blockLen], src[pos:], blockLen)
		if err != nil {
			return err
		}
		pos += consumed
		written += blockLen
	}
	return nil
}
