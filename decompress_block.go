// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// The opcode decoder. Every length and offset is validated against the input
// and output bounds before any byte moves, so adversarial input can never
// read or write outside the supplied buffers.

// decompressBlock decodes the opcode stream at src[s:] into dst, which must
// be sized to exactly the declared uncompressed length. It returns the number
// of bytes written. Reported corruption offsets are absolute positions in src.
func decompressBlock(src []byte, s int, dst []byte) (int, error) {
	var d int

	for s < len(src) {
		tag := src[s]

		var length, offset int
		switch tag & 0x03 {
		case tagLiteral:
			x := int64(tag >> 2)
			s++

			if x >= 60 {
				extra := int(x) - 59
				if s+extra > len(src) {
					return 0, corruptionf(len(src), "truncated literal length")
				}

				x = 0
				for k := range extra {
					x |= int64(src[s+k]) << (8 * k)
				}
				s += extra
			}

			// x is length-1 and can reach 2^32-1 with four extra bytes; the
			// bounds checks below compare in 64 bits before narrowing.
			if x+1 > int64(len(src)-s) {
				return 0, corruptionf(len(src), "truncated literal")
			}
			if x+1 > int64(len(dst)-d) {
				return 0, corruptionf(s, "literal exceeds output size")
			}

			length = int(x) + 1
			copy(dst[d:d+length], src[s:s+length])
			s += length
			d += length
			continue

		case tagCopy1:
			if s+2 > len(src) {
				return 0, corruptionf(len(src), "truncated copy opcode")
			}

			length = 4 + int(tag>>2)&0x7
			offset = int(tag&0xe0)<<3 | int(src[s+1])
			s += 2

		case tagCopy2:
			if s+3 > len(src) {
				return 0, corruptionf(len(src), "truncated copy opcode")
			}

			length = 1 + int(tag>>2)
			offset = int(src[s+1]) | int(src[s+2])<<8
			s += 3

		case tagCopy4:
			if s+5 > len(src) {
				return 0, corruptionf(len(src), "truncated copy opcode")
			}

			length = 1 + int(tag>>2)
			off := int64(load32(src, s+1))
			if off > int64(len(dst)) {
				return 0, corruptionf(s, "copy offset out of range")
			}
			offset = int(off)
			s += 5
		}

		if offset <= 0 || offset > d {
			return 0, corruptionf(s, "copy offset out of range")
		}
		if length > len(dst)-d {
			return 0, corruptionf(s, "copy exceeds output size")
		}

		copyBackRef(dst, d, offset, length)
		d += length
	}

	if d != len(dst) {
		return 0, corruptionf(len(src), "decoded length %d does not match declared %d", d, len(dst))
	}

	return d, nil
}
