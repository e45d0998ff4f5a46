package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Magic:        Magic,
		VMajor:       CurrentMajor,
		VMinor:       CurrentMinor,
		ResumeNum:    42,
		ResumePos:    1000,
		ResumeLen:    1 << 40,
		ResumeLenMax: 1 << 41,
	}
	b := h.Bytes()
	assert.Len(t, b, HeaderBytes)

	back, err := ParseHeader(b)
	require.NoError(t, err)
	assert.Equal(t, h, back)
}

func TestParseHeaderRejectsShortBuffer(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderBytes-1))
	assert.ErrorIs(t, err, ErrHeaderInvalid)
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	h := NewHeader()
	b := h.Bytes()
	b[0] ^= 0xFF
	_, err := ParseHeader(b)
	assert.ErrorIs(t, err, ErrHeaderInvalid)
}

func TestEntryRoundTrip(t *testing.T) {
	e := Entry{Num: 128, FirstDoc: 99, CmpOffset: 1 << 33}
	b := e.Bytes()
	assert.Len(t, b, EntryBytes)
	assert.Equal(t, e, ParseEntry(b))
}
