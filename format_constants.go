// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// Snappy block format constants: opcode tags, compressor parameters, and the
// wire framing for both stream formats.

// Opcode tags occupy the low 2 bits of the first opcode byte.
const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
	tagCopy4   = 0x03
)

// Copy opcode bounds.
const (
	maxCopy1Length = 11   // copy-1 encodes lengths 4..11
	minCopy1Length = 4    //
	maxCopy1Offset = 2048 // copy-1 offset fits 11 bits
	maxCopyLength  = 64   // copy-2/copy-4 encode lengths 1..64 per opcode
)

// Compressor parameters.
const (
	// fragmentSize is the compression granularity: each fragment is matched
	// against its own fresh hash table, so copy offsets stay below 32 KiB.
	fragmentSize = 32768

	// inputMarginBytes is the guard zone at the end of a fragment. The main
	// matching loop never reads past it; the tail is emitted as a literal.
	inputMarginBytes = 15

	// hashMultiplier mixes a 4-byte little-endian read into a table index.
	hashMultiplier = 0x1e35a7bd

	minHashTableSize = 1 << 8
	maxHashTableSize = 1 << 14
)

// x-snappy-framed wire format.
const (
	framedChunkCompressed       = 0x00
	framedChunkUncompressed     = 0x01
	framedChunkStreamIdentifier = 0xff

	// Reserved unskippable chunks are 0x02..0x7f, skippable 0x80..0xfe.
	framedMaxUnskippableChunk = 0x7f

	// Uncompressed data in a framed chunk must not exceed 64 KiB.
	framedMaxBlockSize = 65536

	framedChunkHeaderSize = 4
	framedChecksumSize    = 4
)

// framedHeader is the stream identifier chunk: flag 0xff, length 6, "sNaPpY".
var framedHeader = []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}

// framedMagicBody is the stream identifier payload.
var framedMagicBody = []byte("sNaPpY")

// Legacy stream wire format.
const (
	legacyChunkUncompressed = 0x00
	legacyChunkCompressed   = 0x01

	// A legacy block holds at most 32 KiB; the header's length field is a
	// 16-bit big-endian value.
	legacyMaxBlockSize = 1 << 15

	legacyChunkHeaderSize = 7
)

// legacyHeader is the legacy stream header.
var legacyHeader = []byte{'s', 'n', 'a', 'p', 'p', 'y', 0}

// Stream defaults.
const (
	// DefaultFramedBlockSize is the framed writer's default block size.
	DefaultFramedBlockSize = framedMaxBlockSize

	// DefaultFramedMinCompressionRatio is the framed writer's default
	// compressed/raw threshold for emitting a compressed chunk.
	DefaultFramedMinCompressionRatio = 0.85

	// DefaultLegacyMinCompressionRatio is the legacy writer's threshold.
	DefaultLegacyMinCompressionRatio = 7.0 / 8.0
)
