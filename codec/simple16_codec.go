package codec

import "github.com/invidx/pfor/simple16"

// simple16Codec exposes package simple16 (the sideband packer PForDelta's
// exceptions use, component B) as a standalone, freestanding encID 5 codec
// over a whole gap list, per the encoders.cpp usage table.
type simple16Codec struct{}

// NewSimple16Codec constructs the encID 5 codec.
func NewSimple16Codec() Codec {
	return simple16Codec{}
}

func (simple16Codec) EncodeArray(input, out []uint32) (int, error) {
	return simple16.EncodeArray(input, out)
}

func (simple16Codec) DecodeArray(input, out []uint32, n int) error {
	// simple16.DecodeArray returns words consumed, not values produced; it
	// already guarantees out[:n] is fully populated or returns an error.
	_, err := simple16.DecodeArray(input, out[:n])
	return err
}

func (simple16Codec) MaxEncodedWords(n int) int {
	// Worst case: every value needs the 1-per-word escape case (2 words
	// each, header amortized over groups of 1).
	return 2 * n
}

func (simple16Codec) ID() ID {
	return Simple16
}

func (simple16Codec) Ext() string {
	return Simple16.Ext()
}
