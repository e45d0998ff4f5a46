package container

import "encoding/binary"

// HeaderWords is HEADERSZ from original_source/src/encoders.cpp: the fixed
// 32-bit-word size of the TOC file's header prefix.
const HeaderWords = 9

// HeaderBytes is HeaderWords expressed in bytes, the unit Bytes/ParseHeader
// operate on.
const HeaderBytes = HeaderWords * 4

// Magic and version constants; mismatches reject a TOC file outright.
const (
	Magic        uint32 = 0x50464F52 // "PFOR"
	CurrentMajor uint32 = 1
	CurrentMinor uint32 = 0
)

// Header is the TOC file's fixed-size prefix (spec.md §3 ContainerHeader):
// magic, version, and the four resume fields that let a writer restart a
// killed run from its last checkpoint. Exclusively owned and mutated by
// Writer; Reader treats it as read-only.
type Header struct {
	Magic        uint32
	VMajor       uint32
	VMinor       uint32
	ResumeNum    uint32 // number of lists fully committed
	ResumePos    uint32 // cmp file write position, in 32-bit words
	ResumeLen    uint64 // input file read position, in 32-bit words
	ResumeLenMax uint64 // total input length, in 32-bit words (for progress)
}

// NewHeader returns a fresh, zero-progress header stamped with the current
// magic/version.
func NewHeader() Header {
	return Header{Magic: Magic, VMajor: CurrentMajor, VMinor: CurrentMinor}
}

// Bytes serializes h into exactly HeaderBytes bytes, little-endian, field
// order matching original_source/src/encoders.cpp's __header_written:
// magic, vmajor, vminor, rs_num, rs_pos, rs_len(lo,hi), rs_lenmax(lo,hi).
// Marshaling into one buffer (rather than writing fields individually) is
// what makes the header-write atomic at the caller (see checkpoint in
// writer.go).
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderBytes)
	binary.LittleEndian.PutUint32(b[0:4], h.Magic)
	binary.LittleEndian.PutUint32(b[4:8], h.VMajor)
	binary.LittleEndian.PutUint32(b[8:12], h.VMinor)
	binary.LittleEndian.PutUint32(b[12:16], h.ResumeNum)
	binary.LittleEndian.PutUint32(b[16:20], h.ResumePos)
	binary.LittleEndian.PutUint32(b[20:24], uint32(h.ResumeLen))
	binary.LittleEndian.PutUint32(b[24:28], uint32(h.ResumeLen>>32))
	binary.LittleEndian.PutUint32(b[28:32], uint32(h.ResumeLenMax))
	binary.LittleEndian.PutUint32(b[32:36], uint32(h.ResumeLenMax>>32))
	return b
}

// ParseHeader reverses Bytes, rejecting a short buffer or a magic/version
// mismatch with ErrHeaderInvalid.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderBytes {
		return Header{}, ErrHeaderInvalid
	}
	h := Header{
		Magic:     binary.LittleEndian.Uint32(b[0:4]),
		VMajor:    binary.LittleEndian.Uint32(b[4:8]),
		VMinor:    binary.LittleEndian.Uint32(b[8:12]),
		ResumeNum: binary.LittleEndian.Uint32(b[12:16]),
		ResumePos: binary.LittleEndian.Uint32(b[16:20]),
	}
	h.ResumeLen = uint64(binary.LittleEndian.Uint32(b[20:24])) | uint64(binary.LittleEndian.Uint32(b[24:28]))<<32
	h.ResumeLenMax = uint64(binary.LittleEndian.Uint32(b[28:32])) | uint64(binary.LittleEndian.Uint32(b[32:36]))<<32
	if h.Magic != Magic || h.VMajor != CurrentMajor || h.VMinor != CurrentMinor {
		return Header{}, ErrHeaderInvalid
	}
	return h, nil
}
