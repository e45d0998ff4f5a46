package container

import "encoding/binary"

// EntryWords is EACH_HEADER_TOC_SZ from original_source/src/encoders.cpp:
// the fixed 32-bit-word size of one TOC entry.
const EntryWords = 4

// EntryBytes is EntryWords expressed in bytes.
const EntryBytes = EntryWords * 4

// Entry is one TOCEntry (spec.md §3): a compressed list's original length,
// its first (un-gapped) value, and where its encoded words begin in the cmp
// file.
type Entry struct {
	Num       uint32
	FirstDoc  uint32
	CmpOffset uint64 // word offset into the cmp file
}

// Bytes serializes e, little-endian, field order
// (num, first_doc, cmp_offset_lo, cmp_offset_hi).
func (e Entry) Bytes() []byte {
	b := make([]byte, EntryBytes)
	binary.LittleEndian.PutUint32(b[0:4], e.Num)
	binary.LittleEndian.PutUint32(b[4:8], e.FirstDoc)
	binary.LittleEndian.PutUint32(b[8:12], uint32(e.CmpOffset))
	binary.LittleEndian.PutUint32(b[12:16], uint32(e.CmpOffset>>32))
	return b
}

// ParseEntry reverses Bytes.
func ParseEntry(b []byte) Entry {
	return Entry{
		Num:      binary.LittleEndian.Uint32(b[0:4]),
		FirstDoc: binary.LittleEndian.Uint32(b[4:8]),
		CmpOffset: uint64(binary.LittleEndian.Uint32(b[8:12])) |
			uint64(binary.LittleEndian.Uint32(b[12:16]))<<32,
	}
}
