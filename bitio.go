package pfor

import "math/bits"

// packWords bit-packs the first n values of src into dst at the given
// width, writing ceil(n*width/32) 32-bit words. The least-significant bit of
// each value lands at the lower bit position of the accumulator, streamed
// out 32 bits at a time -- the same accumulator technique
// Akron-fastpfor-go/fastpfor.go's packLane uses, generalized from 4
// interleaved SIMD lanes to a single sequential stream (OPT-PForDelta has no
// fixed lane width to exploit; its bit width varies per block).
func packWords(dst []uint32, src []uint32, n, width int) int {
	if width == 0 {
		return 0
	}
	var mask uint64
	if width >= 32 {
		mask = uint64(^uint32(0))
	} else {
		mask = (uint64(1) << uint(width)) - 1
	}

	var acc uint64
	var bitsInAcc int
	outIdx := 0
	for i := 0; i < n; i++ {
		acc |= (uint64(src[i]) & mask) << uint(bitsInAcc)
		bitsInAcc += width
		for bitsInAcc >= 32 {
			dst[outIdx] = uint32(acc)
			outIdx++
			acc >>= 32
			bitsInAcc -= 32
		}
	}
	if bitsInAcc > 0 {
		dst[outIdx] = uint32(acc)
		outIdx++
	}
	return outIdx
}

// unpackWords reverses packWords: it reads payload (exactly wordsFor(n,
// width) words) and writes n values into dst.
func unpackWords(dst []uint32, payload []uint32, n, width int) {
	if width == 0 {
		for i := 0; i < n; i++ {
			dst[i] = 0
		}
		return
	}
	var mask uint32
	if width >= 32 {
		mask = ^uint32(0)
	} else {
		mask = (uint32(1) << uint(width)) - 1
	}

	var acc uint64
	var bitsInAcc int
	inIdx := 0
	for i := 0; i < n; i++ {
		for bitsInAcc < width {
			var w uint32
			if inIdx < len(payload) {
				w = payload[inIdx]
			}
			acc |= uint64(w) << uint(bitsInAcc)
			inIdx++
			bitsInAcc += 32
		}
		dst[i] = uint32(acc) & mask
		acc >>= uint(width)
		bitsInAcc -= width
	}
}

// wordsFor returns the number of 32-bit words needed to bit-pack n values at
// the given width.
func wordsFor(n, width int) int {
	if width == 0 {
		return 0
	}
	return (n*width + 31) / 32
}

// requiredWidth returns the minimum bit width needed to represent v without
// truncation (0 for v == 0).
func requiredWidth(v uint32) int {
	return bits.Len32(v)
}
