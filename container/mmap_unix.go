//go:build unix

package container

import (
	"os"

	"golang.org/x/sys/unix"
)

// mappedFile is a read-only memory-mapped view of an input file, grounded
// on original_source/src/encoders.cpp's __open_and_mmap_file and the
// teacher's amd64/noasm build-tag split (simdpack.go), repurposing
// golang.org/x/sys from CPU-feature detection to the actual mmap syscall.
type mappedFile struct {
	data []byte
}

// mapFile memory-maps f's full contents read-only. The caller owns f's
// lifetime independently (Close unmaps but does not close f).
func mapFile(f *os.File) (*mappedFile, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &mappedFile{data: nil}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &mappedFile{data: data}, nil
}

// Bytes returns the mapped region.
func (m *mappedFile) Bytes() []byte {
	return m.data
}

// Close unmaps the region.
func (m *mappedFile) Close() error {
	if m.data == nil {
		return nil
	}
	return unix.Munmap(m.data)
}
