package codec

import "github.com/invidx/pfor"

// optPForDeltaCodec adapts pfor.Encoder's cost-minimizing search (encID 7,
// component D) to the Codec interface.
type optPForDeltaCodec struct {
	enc *pfor.Encoder
}

// NewOPTPForDeltaCodec constructs the encID 7 codec.
func NewOPTPForDeltaCodec() Codec {
	return &optPForDeltaCodec{enc: pfor.NewEncoder()}
}

func (c *optPForDeltaCodec) EncodeArray(input, out []uint32) (int, error) {
	return c.enc.EncodeArray(input, out)
}

func (c *optPForDeltaCodec) DecodeArray(input, out []uint32, n int) error {
	return pfor.DecodeArray(input, out, n)
}

func (c *optPForDeltaCodec) MaxEncodedWords(n int) int {
	return pfor.MaxEncodedWords(n)
}

func (c *optPForDeltaCodec) ID() ID {
	return OPTPForDelta
}

func (c *optPForDeltaCodec) Ext() string {
	return OPTPForDelta.Ext()
}
