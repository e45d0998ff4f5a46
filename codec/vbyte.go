package codec

import (
	"encoding/binary"

	"github.com/mhr3/streamvbyte"
)

// vByteCodec (encID 2) delegates the actual bit-twiddling to
// github.com/mhr3/streamvbyte, the teacher's own StreamVByte dependency,
// repurposed here from a test-only cross-check into the production
// implementation backing VariableByte. streamvbyte operates on []byte; this
// type adapts that to the Codec interface's []uint32 word buffers by
// byte-packing the encoded stream little-endian into words (zero-padded to
// a word boundary).
type vByteCodec struct{}

// NewVByteCodec constructs the encID 2 codec.
func NewVByteCodec() Codec {
	return vByteCodec{}
}

func (vByteCodec) EncodeArray(input, out []uint32) (int, error) {
	encoded := streamvbyte.EncodeUint32(input, nil)
	nWords := (len(encoded) + 3) / 4
	if len(out) < nWords {
		return 0, ErrBufferTooSmall
	}
	for i := 0; i < nWords; i++ {
		var chunk [4]byte
		copy(chunk[:], encoded[i*4:min(len(encoded), i*4+4)])
		out[i] = binary.LittleEndian.Uint32(chunk[:])
	}
	return nWords, nil
}

func (vByteCodec) DecodeArray(input, out []uint32, n int) error {
	buf := make([]byte, len(input)*4)
	for i, w := range input {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	decoded := streamvbyte.DecodeUint32(buf, n, out[:0])
	if len(decoded) != n {
		return ErrTruncated
	}
	copy(out, decoded)
	return nil
}

func (vByteCodec) MaxEncodedWords(n int) int {
	// StreamVByte worst case: 4 data bytes/value plus a control byte every
	// 4 values, rounded up to a word.
	return (n*4+(n+3)/4+3)/4 + 1
}

func (vByteCodec) ID() ID {
	return VariableByte
}

func (vByteCodec) Ext() string {
	return VariableByte.Ext()
}
