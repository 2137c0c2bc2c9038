// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// The matching engine. Input is processed in fragments of at most
// fragmentSize bytes; each fragment is compressed independently against its
// own logically fresh hash table, so table entries and copy offsets are
// always fragment-relative and fit in 16 bits.

// hashTableSize returns the table size for a fragment of n bytes: the
// smallest power of two >= n, clamped to [minHashTableSize, maxHashTableSize].
func hashTableSize(n int) int {
	size := minHashTableSize
	for size < maxHashTableSize && size < n {
		size <<= 1
	}

	return size
}

// hashBytes mixes a 4-byte little-endian read into a table index.
func hashBytes(v uint32, shift uint) uint32 {
	return (v * hashMultiplier) >> shift
}

// log2Int returns log2 of a power of two.
func log2Int(n int) uint {
	var l uint
	for n > 1 {
		n >>= 1
		l++
	}

	return l
}

// extendMatch returns the largest k such that src[i:i+k-j] equals src[j:k],
// comparing 8 bytes at a time while both cursors have room.
//
// It assumes 0 <= i && i < j && j <= len(src).
func extendMatch(src []byte, i, j int) int {
	for j+8 <= len(src) && load64(src, i) == load64(src, j) {
		i += 8
		j += 8
	}

	for j < len(src) && src[i] == src[j] {
		i++
		j++
	}

	return j
}

// emitLiteral writes a literal opcode covering lit to dst and returns the
// number of bytes written.
func emitLiteral(dst, lit []byte) int {
	n := len(lit) - 1

	var i int
	switch {
	case n < 60:
		dst[0] = opcodeByte(n<<2 | tagLiteral)
		i = 1
	case n < 1<<8:
		dst[0] = opcodeByte(60<<2 | tagLiteral)
		dst[1] = opcodeByte(n)
		i = 2
	case n < 1<<16:
		dst[0] = opcodeByte(61<<2 | tagLiteral)
		dst[1] = opcodeByte(n)
		dst[2] = opcodeByte(n >> 8)
		i = 3
	case n < 1<<24:
		dst[0] = opcodeByte(62<<2 | tagLiteral)
		dst[1] = opcodeByte(n)
		dst[2] = opcodeByte(n >> 8)
		dst[3] = opcodeByte(n >> 16)
		i = 4
	default:
		dst[0] = opcodeByte(63<<2 | tagLiteral)
		dst[1] = opcodeByte(n)
		dst[2] = opcodeByte(n >> 8)
		dst[3] = opcodeByte(n >> 16)
		dst[4] = opcodeByte(n >> 24)
		i = 5
	}

	return i + copy(dst[i:], lit)
}

// emitCopyUpTo64 writes one copy opcode for length in [4, 64] (or [1, 64] for
// the copy-2 form). Offsets inside a fragment never reach 65536, so the
// copy-4 form is never emitted.
func emitCopyUpTo64(dst []byte, offset, length int) int {
	if length <= maxCopy1Length && length >= minCopy1Length && offset < maxCopy1Offset {
		dst[0] = opcodeByte((offset>>8)<<5 | (length-4)<<2 | tagCopy1)
		dst[1] = opcodeByte(offset)
		return 2
	}

	dst[0] = opcodeByte((length-1)<<2 | tagCopy2)
	dst[1] = opcodeByte(offset)
	dst[2] = opcodeByte(offset >> 8)
	return 3
}

// emitCopy writes copy opcodes for a match of the given offset and length,
// splitting into chunks of at most 64. When more than 64 bytes remain it
// keeps the final chunk at least 4 long so it stays copy-1 eligible.
func emitCopy(dst []byte, offset, length int) int {
	var d int
	for length >= 68 {
		d += emitCopyUpTo64(dst[d:], offset, 64)
		length -= 64
	}

	if length > 64 {
		d += emitCopyUpTo64(dst[d:], offset, 60)
		length -= 60
	}

	return d + emitCopyUpTo64(dst[d:], offset, length)
}

// compressFragment compresses one fragment into dst and returns the number of
// bytes written. table is scratch: it is reset here and its prior contents
// are never meaningful. len(table) must be >= hashTableSize(len(src)).
func compressFragment(src, dst []byte, table []uint16) int {
	tableSize := hashTableSize(len(src))
	shift := 32 - log2Int(tableSize)
	clear(table[:tableSize])

	var d int
	nextEmit := 0

	if len(src) >= inputMarginBytes {
		// The last inputMarginBytes bytes are a guard zone: 4-byte loads and
		// match extension stay in bounds without per-byte checks.
		ipLimit := len(src) - inputMarginBytes
		ip := 1
		nextHash := hashBytes(load32(src, ip), shift)

	outer:
		for {
			// Probe with a growing stride. skip's high bits count failed
			// attempts; the stride skip>>5 grows by one every 32 misses, so
			// uncompressible data is scanned, not crawled.
			skip := 32
			nextIP := ip
			var candidate int

			for {
				ip = nextIP
				h := nextHash
				nextIP = ip + skip>>5
				skip++

				if nextIP > ipLimit {
					break outer
				}

				nextHash = hashBytes(load32(src, nextIP), shift)
				candidate = int(table[h])
				table[h] = uint16(ip)

				if load32(src, candidate) == load32(src, ip) {
					break
				}
			}

			// A 4-byte match at candidate. Flush the pending literal first.
			d += emitLiteral(dst[d:], src[nextEmit:ip])

			for {
				base := ip
				ip = extendMatch(src, candidate+4, ip+4)
				d += emitCopy(dst[d:], base-candidate, ip-base)
				nextEmit = ip

				if ip >= ipLimit {
					break outer
				}

				// Insert the position just before ip so short-range matches
				// overlapping the copy are still discoverable, then try to
				// chain another match at ip itself.
				table[hashBytes(load32(src, ip-1), shift)] = uint16(ip - 1)
				h := hashBytes(load32(src, ip), shift)
				candidate = int(table[h])
				table[h] = uint16(ip)

				if load32(src, candidate) != load32(src, ip) {
					break
				}
			}

			ip++
			nextHash = hashBytes(load32(src, ip), shift)
		}
	}

	if nextEmit < len(src) {
		d += emitLiteral(dst[d:], src[nextEmit:])
	}

	return d
}

// compressAll writes the varint length prefix and the concatenated fragment
// outputs for the whole of src, returning the number of bytes written.
func compressAll(src, dst []byte, table []uint16) int {
	// Length prefix covers the whole input; fragments follow back to back
	// with no separator.
	// #nosec G115 -- block inputs are bounded well below 4 GiB.
	d := putUvarint32(dst, uint32(len(src)))

	for len(src) > 0 {
		frag := src
		if len(frag) > fragmentSize {
			frag = frag[:fragmentSize]
		}

		d += compressFragment(frag, dst[d:], table)
		src = src[len(frag):]
	}

	return d
}
