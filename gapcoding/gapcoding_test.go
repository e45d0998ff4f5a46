package gapcoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	list := []uint32{10, 20, 30}
	gaps := Encode(list[0], list[1:], nil)
	assert.Equal(t, []uint32{9, 9}, gaps)

	back := Decode(list[0], gaps)
	assert.Equal(t, list, back)
}

func TestRoundTripSingleElement(t *testing.T) {
	gaps := Encode(42, nil, nil)
	assert.Empty(t, gaps)
	back := Decode(42, gaps)
	assert.Equal(t, []uint32{42}, back)
}

func TestOrderingViolationWarnsButStillEncodes(t *testing.T) {
	var warnings []string
	warn := func(index int, prev, cur uint32) {
		warnings = append(warnings, "violation")
	}
	gaps := Encode(5, []uint32{3}, warn)
	assert.Len(t, warnings, 1)
	// 3 - 5 - 1 underflows uint32 and wraps to 2^32 - 3; the gap is still
	// produced.
	assert.Equal(t, uint32(0xFFFFFFFD), gaps[0])
}

func TestNoWarningOnAscendingInput(t *testing.T) {
	called := false
	warn := func(index int, prev, cur uint32) { called = true }
	Encode(1, []uint32{2, 3, 4}, warn)
	assert.False(t, called)
}
