package codec

import "github.com/invidx/pfor"

// pforDeltaCodec adapts pfor.Encoder's heuristic-width path (plain PForDelta,
// encID 6) to the Codec interface. The cost-minimizing search lives one
// level down in package pfor (component D); this is a thin dispatch
// wrapper, matching the division of labor spec.md §9 calls for (PForDelta
// and OPT-PForDelta share the same bit-packing machinery and differ only in
// how b is chosen).
type pforDeltaCodec struct {
	enc *pfor.Encoder
}

// NewPForDeltaCodec constructs the encID 6 codec.
func NewPForDeltaCodec() Codec {
	return &pforDeltaCodec{enc: pfor.NewEncoder()}
}

func (c *pforDeltaCodec) EncodeArray(input, out []uint32) (int, error) {
	return c.enc.EncodeArrayPlain(input, out)
}

func (c *pforDeltaCodec) DecodeArray(input, out []uint32, n int) error {
	return pfor.DecodeArray(input, out, n)
}

func (c *pforDeltaCodec) MaxEncodedWords(n int) int {
	return pfor.MaxEncodedWords(n)
}

func (c *pforDeltaCodec) ID() ID {
	return PForDelta
}

func (c *pforDeltaCodec) Ext() string {
	return PForDelta.Ext()
}
