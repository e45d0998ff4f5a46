package codec

import "errors"

var (
	// ErrBufferTooSmall is returned by EncodeArray when out cannot hold the
	// encoded result.
	ErrBufferTooSmall = errors.New("codec: output buffer too small")

	// ErrTruncated is returned by DecodeArray when input ends before n
	// values have been recovered.
	ErrTruncated = errors.New("codec: truncated input")

	// ErrValueOutOfRange is returned by codecs with a restricted input
	// domain (e.g. Simple9 cannot represent values wider than 28 bits) when
	// a value falls outside what the codec can represent.
	ErrValueOutOfRange = errors.New("codec: value out of range for codec")
)
