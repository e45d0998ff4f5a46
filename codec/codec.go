// Package codec provides the uniform Codec interface and the 14-entry
// dispatch table spec.md §4.1/§9 describes: a closed tagged variant of
// codec identities (ID) paired with an interface providing Encode/Decode,
// looked up statically rather than through a C-style function-pointer
// table (original_source/src/encoders.cpp's encoders[encID]/enc_ext[encID]
// arrays).
package codec

import "fmt"

// ID identifies one of the fourteen codecs named in
// original_source/src/encoders.cpp's usage text. IDs are stable and part of
// the container's external file-naming interface (the codec is identified
// by the container file's extension, never negotiated at decode time).
type ID int

const (
	Gamma ID = iota
	Delta
	VariableByte
	BinaryInterpolative
	Simple9
	Simple16
	PForDelta
	OPTPForDelta
	VSEncodingBlocks
	VSEncodingRest_ // renamed from VSE-R to be a valid Go identifier
	VSEncodingRest
	VSEncodingBlocksHybrid
	VSEncodingSimpleV1
	VSEncodingSimpleV2

	NumEncoders
)

// names mirrors encoders.cpp's __usage() listing, in encID order.
var names = [NumEncoders]string{
	"Gamma", "Delta", "VariableByte", "BinaryInterpolative", "Simple9",
	"Simple16", "PForDelta", "OPTPForDelta", "VSEncodingBlocks", "VSE-R",
	"VSEncodingRest", "VSEncodingBlocksHybrid", "VSEncodingSimpleV1",
	"VSEncodingSimpleV2",
}

// extensions is the file extension appended to the input path to form the
// cmp file name (spec.md §4.4).
var extensions = [NumEncoders]string{
	".gamma", ".delta", ".vb", ".bic", ".s9", ".s16", ".pfd", ".optpfd",
	".vsblocks", ".vser", ".vsrest", ".vsblockshybrid", ".vssimple1",
	".vssimple2",
}

func (id ID) String() string {
	if id < 0 || id >= NumEncoders {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return names[id]
}

// Ext returns id's cmp-file extension.
func (id ID) Ext() string {
	if id < 0 || id >= NumEncoders {
		return ""
	}
	return extensions[id]
}

// Valid reports whether id is in [0, NumEncoders).
func (id ID) Valid() bool {
	return id >= 0 && id < NumEncoders
}

// Codec is the uniform interface every encID implements (spec.md §4.1).
type Codec interface {
	// EncodeArray encodes input (a gap list, or for BinaryInterpolative raw
	// ascending values) into out, returning the number of 32-bit words
	// written. Returns ErrBufferTooSmall if out cannot hold the worst case.
	EncodeArray(input []uint32, out []uint32) (int, error)

	// DecodeArray decodes exactly n values from input into out. The caller
	// supplies n out-of-band (from the TOC), per spec.md §4.1.
	DecodeArray(input []uint32, out []uint32, n int) error

	// MaxEncodedWords returns a safe upper bound on the words EncodeArray
	// needs to encode n values, so callers can size scratch buffers without
	// per-call allocation.
	MaxEncodedWords(n int) int

	// ID returns the codec's dispatch identity.
	ID() ID

	// Ext returns id.Ext() for this codec; part of the interface (not just
	// a free function on ID) since the container writer derives the cmp
	// file name from whichever Codec it was handed.
	Ext() string
}

// Table is the closed, process-wide-immutable dispatch table (spec.md §5:
// "the codec dispatch table and candidate-width list are immutable
// process-wide constants"), one constructor per ID.
var Table = [NumEncoders]func() Codec{
	Gamma:                  func() Codec { return NewGammaCodec() },
	Delta:                  func() Codec { return NewDeltaCodec() },
	VariableByte:           func() Codec { return NewVByteCodec() },
	BinaryInterpolative:    func() Codec { return NewBICCodec() },
	Simple9:                func() Codec { return NewSimple9Codec() },
	Simple16:               func() Codec { return NewSimple16Codec() },
	PForDelta:              func() Codec { return NewPForDeltaCodec() },
	OPTPForDelta:           func() Codec { return NewOPTPForDeltaCodec() },
	VSEncodingBlocks:       func() Codec { return newVSEncodingCodec(VSEncodingBlocks) },
	VSEncodingRest_:        func() Codec { return newVSEncodingCodec(VSEncodingRest_) },
	VSEncodingRest:         func() Codec { return newVSEncodingCodec(VSEncodingRest) },
	VSEncodingBlocksHybrid: func() Codec { return newVSEncodingCodec(VSEncodingBlocksHybrid) },
	VSEncodingSimpleV1:     func() Codec { return newVSEncodingCodec(VSEncodingSimpleV1) },
	VSEncodingSimpleV2:     func() Codec { return newVSEncodingCodec(VSEncodingSimpleV2) },
}

// New constructs a fresh Codec instance for id. Returns an error for an
// out-of-range id (spec.md §7, UsageError).
func New(id ID) (Codec, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("codec: invalid encoder id %d (want [0,%d))", int(id), int(NumEncoders))
	}
	return Table[id](), nil
}
