// Package pfor implements the OPT-PForDelta integer compression codec.
//
// The codec operates on fixed blocks of up to BlockSize (128) ascending gap
// values. Each block is bit-packed at a width b chosen, per block, to
// minimize total encoded size over a small candidate set; values that don't
// fit in b bits spill into an exception sideband encoded with the companion
// simple16 package. Callers provide destination slices to Encode/Decode so
// higher-level code (the container package) can reuse buffers across many
// lists without repeated allocation. The package keeps no global mutable
// state; an Encoder's scratch buffers are owned by that Encoder and must not
// be shared across concurrent callers.
//
// References:
//   - Zhang, Long, Suel. "Optimizing Variable-Byte Compression..." SIGMOD 2008.
//   - Yan, Ding, Suel. "Inverted index compression and query processing with
//     optimized document ordering." WWW 2009 (OPTPForDelta).
package pfor
