// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "encoding/binary"

// load32 reads a 4-byte little-endian word at src[i:]. The compiler lowers
// binary.LittleEndian.Uint32 to a single unaligned load where the platform
// allows it and to byte assembly elsewhere; both read identical values.
func load32(src []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(src[i : i+4])
}

// load64 reads an 8-byte little-endian word at src[i:].
func load64(src []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(src[i : i+8])
}
