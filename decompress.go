// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "math"

// GetUncompressedLength decodes the leading varint of a Snappy block and
// returns the uncompressed length it declares. It fails with a
// CorruptionError on a malformed varint or a length that cannot be
// represented on this platform.
func GetUncompressedLength(src []byte) (int, error) {
	v, _, err := uvarint32(src, 0)
	if err != nil {
		return 0, err
	}

	if uint64(v) > uint64(math.MaxInt) {
		return 0, corruptionf(0, "uncompressed length %d too large", v)
	}

	return int(v), nil
}

// Uncompress decodes a Snappy block and returns the original bytes in a
// freshly allocated buffer of exactly the declared length.
func Uncompress(src []byte) ([]byte, error) {
	n, err := GetUncompressedLength(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, n)
	if _, err := UncompressInto(src, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// UncompressInto decodes a Snappy block into dst and returns the number of
// bytes written at dst[0:], always exactly the declared uncompressed length.
// It fails with a CorruptionError if the block is malformed or the declared
// length exceeds len(dst).
func UncompressInto(src, dst []byte) (int, error) {
	v, n, err := uvarint32(src, 0)
	if err != nil {
		return 0, err
	}

	if uint64(v) > uint64(len(dst)) {
		return 0, corruptionf(0, "uncompressed length %d exceeds destination %d", v, len(dst))
	}

	return decompressBlock(src, n, dst[:v])
}
