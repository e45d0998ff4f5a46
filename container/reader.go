package container

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/invidx/pfor/codec"
	"github.com/invidx/pfor/gapcoding"
)

// Reader decodes a cmp/TOC file pair back into posting lists, the
// mechanical inverse of Writer (spec.md §4.5): original_source ships only
// the encoder, so this sequencing -- open TOC, validate header, iterate
// entries, decode each against the cmp file, re-prefix first_doc -- is
// spec.md's description made concrete rather than a second source to port.
type Reader struct {
	codec   codec.Codec
	cmpFile *os.File
	tocFile *os.File
	mapped  *mappedFile
	header  Header
	entries []Entry
}

// Open validates the TOC header and loads its entries into memory (they're
// small, fixed-size records). The cmp payload is mapped once here, and each
// Decode slices its list out of that mapping.
func Open(cmpPath, tocPath string, id codec.ID) (*Reader, error) {
	c, err := codec.New(id)
	if err != nil {
		return nil, err
	}

	tocFile, err := os.Open(tocPath)
	if err != nil {
		return nil, err
	}

	hbuf := make([]byte, HeaderBytes)
	if _, err := io.ReadFull(tocFile, hbuf); err != nil {
		tocFile.Close()
		return nil, ErrHeaderInvalid
	}
	header, err := ParseHeader(hbuf)
	if err != nil {
		tocFile.Close()
		return nil, err
	}

	rest, err := io.ReadAll(tocFile)
	if err != nil {
		tocFile.Close()
		return nil, err
	}
	entries := make([]Entry, len(rest)/EntryBytes)
	for i := range entries {
		entries[i] = ParseEntry(rest[i*EntryBytes : (i+1)*EntryBytes])
	}

	cmpFile, err := os.Open(cmpPath)
	if err != nil {
		tocFile.Close()
		return nil, err
	}
	mapped, err := mapFile(cmpFile)
	if err != nil {
		tocFile.Close()
		cmpFile.Close()
		return nil, err
	}

	return &Reader{
		codec:   c,
		cmpFile: cmpFile,
		tocFile: tocFile,
		mapped:  mapped,
		header:  header,
		entries: entries,
	}, nil
}

// Len returns the number of posting lists recorded in the TOC.
func (r *Reader) Len() int {
	return len(r.entries)
}

// Header exposes the validated ContainerHeader (mainly the resume fields,
// useful for diagnostics/progress tooling).
func (r *Reader) Header() Header {
	return r.header
}

// Decode reconstructs the i'th posting list.
func (r *Reader) Decode(i int) ([]uint32, error) {
	e := r.entries[i]
	var end uint64
	if i+1 < len(r.entries) {
		end = r.entries[i+1].CmpOffset
	} else {
		end = uint64(len(r.mapped.Bytes())) / 4
	}
	words := wordsFromBytes(r.mapped.Bytes()[e.CmpOffset*4 : end*4])

	isBIC := r.codec.ID() == codec.BinaryInterpolative
	n := int(e.Num)
	if !isBIC {
		n--
	}

	dst := make([]uint32, n)
	if err := r.codec.DecodeArray(words, dst, n); err != nil {
		return nil, err
	}
	if isBIC {
		return dst, nil
	}
	return gapcoding.Decode(e.FirstDoc, dst), nil
}

// Close releases the cmp/TOC file handles and unmaps the payload.
func (r *Reader) Close() error {
	err1 := r.mapped.Close()
	err2 := r.cmpFile.Close()
	err3 := r.tocFile.Close()
	if err1 != nil {
		return err1
	}
	if err2 != nil {
		return err2
	}
	return err3
}

func wordsFromBytes(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return out
}
