// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import (
	"encoding/binary"
	"fmt"
	"io"
)

// The x-snappy-framed format: 10-byte stream identifier chunk, 4-byte chunk
// headers with a 24-bit little-endian length, and the masked CRC32C as the
// first four payload bytes of every data chunk.

// framedVariant wires the framed wire layout into the shared stream skeleton.
var framedVariant = &streamVariant{
	name:             "framed",
	header:           framedHeader,
	chunkHeaderSize:  framedChunkHeaderSize,
	maxBlockSize:     framedMaxBlockSize,
	defaultMinRatio:  DefaultFramedMinCompressionRatio,
	parseFrameHeader: parseFramedFrameHeader,
	extractCrc:       extractFramedCrc,
	writeChunk:       writeFramedChunk,
}

// NewFramedWriter returns a Writer emitting the x-snappy-framed format with
// default block size and compression ratio. The stream identifier is written
// immediately.
func NewFramedWriter(w io.Writer) (*Writer, error) {
	return newStreamWriter(w, framedVariant, nil)
}

// NewFramedWriterOptions is NewFramedWriter with explicit options.
func NewFramedWriterOptions(w io.Writer, opts *WriterOptions) (*Writer, error) {
	return newStreamWriter(w, framedVariant, opts)
}

// NewFramedReader returns a Reader decoding the x-snappy-framed format. The
// stream identifier is consumed and validated immediately.
func NewFramedReader(r io.Reader, verifyChecksums bool) (*Reader, error) {
	return newStreamReader(r, framedVariant, &ReaderOptions{VerifyChecksums: verifyChecksums})
}

// NewFramedReaderOptions is NewFramedReader with explicit options.
func NewFramedReaderOptions(r io.Reader, opts *ReaderOptions) (*Reader, error) {
	return newStreamReader(r, framedVariant, opts)
}

// parseFramedFrameHeader classifies a 4-byte framed chunk header.
//
// Data chunks must be at least 5 bytes long (checksum plus one data byte);
// stream identifier chunks must be exactly 6. Flags 0x02..0x7f are reserved
// unskippable, 0x80..0xfe reserved skippable.
func parseFramedFrameHeader(hdr []byte) (frameMeta, error) {
	flag := hdr[0]
	length := int(hdr[1]) | int(hdr[2])<<8 | int(hdr[3])<<16

	var meta frameMeta
	var minLength int

	switch {
	case flag == framedChunkCompressed:
		meta = frameMeta{action: actionUncompress, length: length}
		minLength = framedChecksumSize + 1

	case flag == framedChunkUncompressed:
		meta = frameMeta{action: actionRaw, length: length}
		minLength = framedChecksumSize + 1

	case flag == framedChunkStreamIdentifier:
		if length != len(framedMagicBody) {
			return frameMeta{}, fmt.Errorf("%w: %d for stream identifier chunk", ErrInvalidChunkLength, length)
		}

		meta = frameMeta{action: actionSkip, length: length, verifyMagic: true}

	case flag <= framedMaxUnskippableChunk:
		return frameMeta{}, fmt.Errorf("%w: flag %#02x", ErrUnsupportedChunk, flag)

	default:
		meta = frameMeta{action: actionSkip, length: length}
	}

	if length < minLength {
		return frameMeta{}, fmt.Errorf("%w: %d for chunk flag %#02x", ErrInvalidChunkLength, length, flag)
	}

	return meta, nil
}

// extractFramedCrc reads the little-endian checksum leading a data chunk's
// payload; frame data starts right after it.
func extractFramedCrc(_, payload []byte) (uint32, int) {
	return binary.LittleEndian.Uint32(payload[:framedChecksumSize]), framedChecksumSize
}

// writeFramedChunk emits flag, 24-bit little-endian length covering checksum
// plus payload, the checksum, and the payload.
func writeFramedChunk(w *Writer, payload []byte, compressed bool, crc uint32) error {
	hdr := w.hdrScratch[:framedChunkHeaderSize+framedChecksumSize]

	if compressed {
		hdr[0] = framedChunkCompressed
	} else {
		hdr[0] = framedChunkUncompressed
	}

	n := len(payload) + framedChecksumSize
	hdr[1] = byte(n)
	hdr[2] = byte(n >> 8)
	hdr[3] = byte(n >> 16)
	binary.LittleEndian.PutUint32(hdr[4:], crc)

	if _, err := w.sink.Write(hdr); err != nil {
		return err
	}

	_, err := w.sink.Write(payload)
	return err
}
