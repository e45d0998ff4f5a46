package pfor

// BlockSize is the number of gap values packed into a single PForDelta
// block. The wire format's header bit allocation below is sized for this
// default (spec.md §3/§4.2); callers needing a different block size must
// keep headerCountBits/headerPosBits wide enough for it.
const BlockSize = 128

// Header bit layout (spec.md §4.2): b occupies the low bits, exception
// count the next, first-exception-position the next. 6 bits cover b in
// [0,32]; 8 bits cover a count in [0,128]; 7 bits cover a position in
// [0,127].
const (
	headerWidthBits = 6
	headerCountBits = 8
	headerPosBits   = 7

	headerWidthMask = (1 << headerWidthBits) - 1
	headerCountMask = (1 << headerCountBits) - 1
	headerPosMask   = (1 << headerPosBits) - 1

	headerCountShift = headerWidthBits
	headerPosShift   = headerWidthBits + headerCountBits
)

// encodeHeader packs (b, numExceptions, firstExceptionPos) into one word.
func encodeHeader(b, numExceptions, firstExceptionPos int) uint32 {
	return uint32(b&headerWidthMask) |
		uint32(numExceptions&headerCountMask)<<headerCountShift |
		uint32(firstExceptionPos&headerPosMask)<<headerPosShift
}

// decodeHeader reverses encodeHeader.
func decodeHeader(header uint32) (b, numExceptions, firstExceptionPos int) {
	b = int(header & headerWidthMask)
	numExceptions = int((header >> headerCountShift) & headerCountMask)
	firstExceptionPos = int((header >> headerPosShift) & headerPosMask)
	return
}
