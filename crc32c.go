// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "hash/crc32"

// crcTable is the Castagnoli polynomial table. hash/crc32 uses hardware CRC
// instructions where available; output matches the software table bit-for-bit.
var crcTable = crc32.MakeTable(crc32.Castagnoli)

// maskedCrc32c computes the Castagnoli CRC32 of b and applies the Snappy mask
// transform. The mask exists so that the CRC of data containing a CRC cannot
// equal the original.
func maskedCrc32c(b []byte) uint32 {
	c := crc32.Checksum(b, crcTable)
	return uint32(c>>15|c<<17) + 0xa282ead8
}
