package container

import (
	"encoding/binary"
	"io"
	"log"
	"os"

	"github.com/invidx/pfor/codec"
	"github.com/invidx/pfor/gapcoding"
)

// Writer encodes a raw list-of-lists input file into a compressed payload
// file (cmp) and a resumable table-of-contents file (TOC), grounded on
// original_source/src/encoders.cpp's single-threaded main() loop: read,
// skip-filter, gap-transform, dispatch to the selected codec, append,
// checkpoint.
type Writer struct {
	opts    Options
	codecID codec.ID
	codec   codec.Codec
	logger  *log.Logger

	scratchList []uint32
	scratchGaps []uint32
	scratchOut  []uint32
}

// NewWriter constructs a Writer for the given codec identity. logger may be
// nil to disable progress/warning output (spec.md §6's `-p` flag gates
// this at the CLI layer).
func NewWriter(id codec.ID, opts Options, logger *log.Logger) (*Writer, error) {
	c, err := codec.New(id)
	if err != nil {
		return nil, err
	}
	return &Writer{
		opts:        opts,
		codecID:     id,
		codec:       c,
		logger:      logger,
		scratchList: make([]uint32, opts.MaxListLen),
		scratchGaps: make([]uint32, opts.MaxListLen),
		scratchOut:  make([]uint32, c.MaxEncodedWords(int(opts.MaxListLen))),
	}, nil
}

// Run encodes inputPath into cmpPath/tocPath. If resume is true and tocPath
// already holds a valid, sufficiently-backed header, encoding continues
// from the last checkpoint instead of starting over (spec.md §4.4).
func (w *Writer) Run(inputPath, cmpPath, tocPath string, resume bool) error {
	inFile, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer inFile.Close()

	mapped, err := mapFile(inFile)
	if err != nil {
		return err
	}
	defer mapped.Close()

	cursor := newWordCursor(mapped.Bytes())
	totalWords := cursor.totalWords()

	cmpFile, err := os.OpenFile(cmpPath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer cmpFile.Close()

	tocFile, err := os.OpenFile(tocPath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer tocFile.Close()

	header := NewHeader()
	listIndex := 0
	cmpWordPos := int64(0)

	if resume {
		if h, ok := tryResume(tocFile, cmpFile); ok {
			header = h
			listIndex = int(h.ResumeNum)
			cmpWordPos = int64(h.ResumePos)
			cursor.seekWords(int(h.ResumeLen))
		} else {
			if w.logger != nil {
				w.logger.Printf("resume requested but unavailable; starting fresh")
			}
			resume = false
		}
	}

	if !resume {
		if err := cmpFile.Truncate(0); err != nil {
			return err
		}
		if err := tocFile.Truncate(0); err != nil {
			return err
		}
		if _, err := tocFile.WriteAt(header.Bytes(), 0); err != nil {
			return err
		}
	}

	if err := cmpFile.Truncate(cmpWordPos * 4); err != nil {
		return err
	}
	if _, err := cmpFile.Seek(cmpWordPos*4, io.SeekStart); err != nil {
		return err
	}
	tocWritePos := int64(HeaderBytes) + int64(listIndex)*int64(EntryBytes)
	if err := tocFile.Truncate(tocWritePos); err != nil {
		return err
	}
	if _, err := tocFile.Seek(tocWritePos, io.SeekStart); err != nil {
		return err
	}

	isBIC := w.codecID == codec.BinaryInterpolative

	for cursor.remaining() > 0 {
		n := int(cursor.readWord())
		if n > cursor.remaining() {
			return ErrTruncatedInput
		}
		if uint32(n) <= w.opts.SkipThreshold || uint32(n) >= w.opts.MaxListLen {
			cursor.seekWords(cursor.wordPos() + n)
			continue
		}
		if n > len(w.scratchList) {
			return ErrBufferTooSmall
		}
		cursor.readWords(w.scratchList, n)

		firstDoc := w.scratchList[0]
		var input []uint32
		if isBIC {
			input = w.scratchList[:n]
		} else {
			gapcoding.EncodeInto(w.scratchGaps[:n-1], firstDoc, w.scratchList[1:n], w.warn)
			input = w.scratchGaps[:n-1]
		}

		written, err := w.codec.EncodeArray(input, w.scratchOut)
		if err != nil {
			return err
		}
		if err := writeWords(cmpFile, w.scratchOut[:written]); err != nil {
			return err
		}

		entry := Entry{Num: uint32(n), FirstDoc: firstDoc, CmpOffset: uint64(cmpWordPos)}
		if _, err := tocFile.Write(entry.Bytes()); err != nil {
			return err
		}

		cmpWordPos += int64(written)
		listIndex++

		if w.opts.CheckpointInterval > 0 && listIndex%w.opts.CheckpointInterval == 0 {
			if w.logger != nil && totalWords > 0 {
				w.logger.Printf("checkpoint at list %d (%d%% of input consumed)",
					listIndex, (cursor.wordPos()*100)/totalWords)
			}
			if err := checkpoint(cmpFile, tocFile, &header, listIndex, cmpWordPos, cursor.wordPos(), totalWords); err != nil {
				return err
			}
		}
	}

	return checkpoint(cmpFile, tocFile, &header, listIndex, cmpWordPos, cursor.wordPos(), totalWords)
}

func (w *Writer) warn(index int, prev, cur uint32) {
	if w.logger != nil {
		w.logger.Printf("ordering violation at list position %d: value %d did not exceed previous %d", index+1, cur, prev)
	}
}

// checkpoint rewrites header's resume fields and durably flushes both
// files, the header last, so a crash mid-checkpoint leaves a torn cmp/TOC
// pair but never a header claiming progress the payload doesn't back
// (spec.md §9's atomic-header design note).
func checkpoint(cmpFile, tocFile *os.File, header *Header, listIndex int, cmpWordPos int64, inputWordPos, totalWords int) error {
	header.ResumeNum = uint32(listIndex)
	header.ResumePos = uint32(cmpWordPos)
	header.ResumeLen = uint64(inputWordPos)
	header.ResumeLenMax = uint64(totalWords)

	if err := cmpFile.Sync(); err != nil {
		return err
	}
	if err := tocFile.Sync(); err != nil {
		return err
	}
	if _, err := tocFile.WriteAt(header.Bytes(), 0); err != nil {
		return err
	}
	return tocFile.Sync()
}

// tryResume validates a candidate resume header against the actual sizes
// of the cmp/TOC files, per spec.md §4.4's resume preconditions.
func tryResume(tocFile, cmpFile *os.File) (Header, bool) {
	tocInfo, err := tocFile.Stat()
	if err != nil || tocInfo.Size() < HeaderBytes {
		return Header{}, false
	}
	buf := make([]byte, HeaderBytes)
	if _, err := tocFile.ReadAt(buf, 0); err != nil {
		return Header{}, false
	}
	h, err := ParseHeader(buf)
	if err != nil {
		return Header{}, false
	}

	cmpInfo, err := cmpFile.Stat()
	if err != nil || cmpInfo.Size() < int64(h.ResumePos)*4 {
		return Header{}, false
	}
	if tocInfo.Size() < int64(HeaderBytes)+int64(h.ResumeNum)*int64(EntryBytes) {
		return Header{}, false
	}
	return h, true
}

func writeWords(f *os.File, words []uint32) error {
	if len(words) == 0 {
		return nil
	}
	buf := make([]byte, len(words)*4)
	for i, v := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	_, err := f.Write(buf)
	return err
}
