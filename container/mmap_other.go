//go:build !unix

package container

import (
	"io"
	"os"
)

// mappedFile is the non-unix fallback: a plain in-memory read of the whole
// file, giving the same Bytes()/Close() surface as mmap_unix.go without the
// unix-only syscalls.
type mappedFile struct {
	data []byte
}

func mapFile(f *os.File) (*mappedFile, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &mappedFile{data: data}, nil
}

func (m *mappedFile) Bytes() []byte {
	return m.data
}

func (m *mappedFile) Close() error {
	return nil
}
