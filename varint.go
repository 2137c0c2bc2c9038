// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// The uncompressed-length prefix is a little-endian base-128 varint holding a
// 32-bit value, at most 5 bytes. encoding/binary's Uvarint is 64-bit and does
// not report the fault offset, so the codec carries its own.

// maxVarintLen32 is the maximum encoded size of the length prefix.
const maxVarintLen32 = 5

// putUvarint32 encodes v at dst[0:] and returns the number of bytes written.
// dst must have room for maxVarintLen32 bytes.
func putUvarint32(dst []byte, v uint32) int {
	n := 0
	for v >= 0x80 {
		dst[n] = byte(v) | 0x80
		v >>= 7
		n++
	}

	dst[n] = byte(v)
	return n + 1
}

// uvarint32 decodes the varint at src[off:] and returns the value and the
// number of bytes consumed. It fails with a CorruptionError when the input
// ends mid-varint or the value would not fit in 32 bits.
func uvarint32(src []byte, off int) (uint32, int, error) {
	var v uint32
	var shift uint

	for i := 0; i < maxVarintLen32; i++ {
		if off+i >= len(src) {
			return 0, 0, corruptionf(len(src), "truncated length varint")
		}

		b := src[off+i]
		if i == maxVarintLen32-1 && b > 0x0f {
			// The 5th byte contributes bits 28..34; anything above 0x0f
			// overflows 32 bits (a set continuation bit included).
			return 0, 0, corruptionf(off+i, "length varint exceeds 32 bits")
		}

		v |= uint32(b&0x7f) << shift
		if b < 0x80 {
			return v, i + 1, nil
		}

		shift += 7
	}

	return 0, 0, corruptionf(off+maxVarintLen32-1, "length varint exceeds 32 bits")
}
