package codec

// simple9Codec implements Simple9 (encID 4): the classic single-word
// packer this family descends from, predating Simple16 (component B,
// package simple16) which adds a 16th, escape-equipped layout. Simple9 has
// no escape case, so it cannot represent a value needing more than 28 bits;
// such input is rejected with ErrValueOutOfRange rather than silently
// truncated.
type simple9Codec struct{}

// NewSimple9Codec constructs the encID 4 codec.
func NewSimple9Codec() Codec {
	return simple9Codec{}
}

type s9case struct {
	count int
	width int
}

// s9cases is the classic nine-layout table: selector i packs cases[i].count
// values of cases[i].width bits each into the 28 data bits of one word.
var s9cases = [9]s9case{
	{28, 1}, {14, 2}, {9, 3}, {7, 4}, {5, 5}, {4, 7}, {3, 9}, {2, 14}, {1, 28},
}

func s9fits(values []uint32, bits int) bool {
	if bits >= 32 {
		return true
	}
	limit := uint32(1) << uint(bits)
	for _, v := range values {
		if v >= limit {
			return false
		}
	}
	return true
}

func s9pickCase(values []uint32, pos int) (int, error) {
	for sel, c := range s9cases {
		n := c.count
		if pos+n > len(values) {
			n = len(values) - pos
		}
		if n == 0 {
			continue
		}
		if s9fits(values[pos:pos+n], c.width) {
			return sel, nil
		}
	}
	return 0, ErrValueOutOfRange
}

func (simple9Codec) EncodeArray(input, out []uint32) (int, error) {
	pos, w := 0, 0
	for pos < len(input) {
		if w >= len(out) {
			return 0, ErrBufferTooSmall
		}
		sel, err := s9pickCase(input, pos)
		if err != nil {
			return 0, err
		}
		c := s9cases[sel]
		n := c.count
		if pos+n > len(input) {
			n = len(input) - pos
		}
		word := uint32(sel) << 28
		for i := 0; i < n; i++ {
			word |= input[pos+i] << uint(i*c.width)
		}
		out[w] = word
		w++
		pos += n
	}
	return w, nil
}

func (simple9Codec) DecodeArray(input, out []uint32, n int) error {
	pos, w := 0, 0
	for pos < n {
		if w >= len(input) {
			return ErrTruncated
		}
		word := input[w]
		w++
		sel := int(word >> 28)
		if sel >= len(s9cases) {
			return ErrTruncated
		}
		c := s9cases[sel]
		count := c.count
		if pos+count > n {
			count = n - pos
		}
		mask := uint32(1)<<uint(c.width) - 1
		for i := 0; i < count; i++ {
			out[pos+i] = (word >> uint(i*c.width)) & mask
		}
		pos += count
	}
	return nil
}

func (simple9Codec) MaxEncodedWords(n int) int {
	// Worst case: one value per word (the 1x28 layout).
	return n
}

func (simple9Codec) ID() ID {
	return Simple9
}

func (simple9Codec) Ext() string {
	return Simple9.Ext()
}
