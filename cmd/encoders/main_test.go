package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInputBytes(lists [][]uint32) []byte {
	var buf []byte
	var word [4]byte
	putWord := func(v uint32) {
		binary.LittleEndian.PutUint32(word[:], v)
		buf = append(buf, word[:]...)
	}
	for _, list := range lists {
		putWord(uint32(len(list)))
		for _, v := range list {
			putWord(v)
		}
	}
	return buf
}

func TestRunRejectsBadEncoderID(t *testing.T) {
	dir := t.TempDir()
	infile := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(infile, nil, 0o644))

	err := run([]string{"99", infile})
	assert.Error(t, err)
}

func TestRunRejectsWrongArgCount(t *testing.T) {
	assert.Error(t, run(nil))
	assert.Error(t, run([]string{"1"}))
	assert.Error(t, run([]string{"1", "a", "b"}))
}

func TestRunRejectsMissingInputFile(t *testing.T) {
	err := run([]string{"6", "/nonexistent/path/in.bin"})
	assert.Error(t, err)
}

func TestRunEncodesSuccessfully(t *testing.T) {
	dir := t.TempDir()
	lists := [][]uint32{{1, 2, 3}, {10, 20, 30, 40}}
	infile := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(infile, buildInputBytes(lists), 0o644))

	require.NoError(t, run([]string{"6", infile}))

	_, err := os.Stat(infile + ".pfd")
	assert.NoError(t, err)
	_, err = os.Stat(infile + ".pfd.TOC")
	assert.NoError(t, err)
}

func TestRunSupportsProgressAndResumeFlags(t *testing.T) {
	dir := t.TempDir()
	lists := [][]uint32{{1, 2, 3}}
	infile := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(infile, buildInputBytes(lists), 0o644))

	require.NoError(t, run([]string{"-p", "7", infile}))
	require.NoError(t, run([]string{"-r", "7", infile}))
}
