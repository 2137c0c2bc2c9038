// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// The legacy stream format: 7-byte "snappy\0" header, then per chunk a flag
// byte, a big-endian 16-bit payload length, and the masked CRC32C stored
// big-endian in the header itself. Blocks hold at most 32 KiB of
// uncompressed data and empty blocks are never written.

// legacyVariant wires the legacy wire layout into the shared stream skeleton.
var legacyVariant = &streamVariant{
	name:             "legacy",
	header:           legacyHeader,
	chunkHeaderSize:  legacyChunkHeaderSize,
	maxBlockSize:     legacyMaxBlockSize,
	defaultMinRatio:  DefaultLegacyMinCompressionRatio,
	parseFrameHeader: parseLegacyFrameHeader,
	extractCrc:       extractLegacyCrc,
	writeChunk:       writeLegacyChunk,
}

// NewLegacyWriter returns a Writer emitting the legacy stream format. The
// "snappy\0" header is written immediately.
func NewLegacyWriter(w io.Writer) (*Writer, error) {
	return newStreamWriter(w, legacyVariant, nil)
}

// NewLegacyWriterOptions is NewLegacyWriter with explicit options.
func NewLegacyWriterOptions(w io.Writer, opts *WriterOptions) (*Writer, error) {
	return newStreamWriter(w, legacyVariant, opts)
}

// NewLegacyReader returns a Reader decoding the legacy stream format. The
// "snappy\0" header is consumed and validated immediately.
func NewLegacyReader(r io.Reader, verifyChecksums bool) (*Reader, error) {
	return newStreamReader(r, legacyVariant, &ReaderOptions{VerifyChecksums: verifyChecksums})
}

// NewLegacyReaderOptions is NewLegacyReader with explicit options.
func NewLegacyReaderOptions(r io.Reader, opts *ReaderOptions) (*Reader, error) {
	return newStreamReader(r, legacyVariant, opts)
}

// parseLegacyFrameHeader classifies a 7-byte legacy chunk header.
//
// An embedded "snappy\0" header is accepted as a zero-length skipped marker,
// so concatenated legacy streams decode as one.
func parseLegacyFrameHeader(hdr []byte) (frameMeta, error) {
	flag := hdr[0]
	length := int(hdr[1])<<8 | int(hdr[2])

	var meta frameMeta
	switch flag {
	case legacyChunkUncompressed:
		meta = frameMeta{action: actionRaw, length: length}

	case legacyChunkCompressed:
		meta = frameMeta{action: actionUncompress, length: length}

	case 's':
		if !bytes.Equal(hdr, legacyHeader) {
			return frameMeta{}, fmt.Errorf("%w: flag %#02x", ErrUnsupportedChunk, flag)
		}

		return frameMeta{action: actionSkip}, nil

	default:
		return frameMeta{}, fmt.Errorf("%w: flag %#02x", ErrUnsupportedChunk, flag)
	}

	if length <= 0 || length > legacyMaxBlockSize {
		return frameMeta{}, fmt.Errorf("%w: %d for chunk flag %#02x", ErrInvalidChunkLength, length, flag)
	}

	return meta, nil
}

// extractLegacyCrc reads the big-endian checksum stored in the chunk header;
// frame data occupies the whole payload.
func extractLegacyCrc(hdr, _ []byte) (uint32, int) {
	return binary.BigEndian.Uint32(hdr[3:legacyChunkHeaderSize]), 0
}

// writeLegacyChunk emits flag, big-endian payload length, big-endian
// checksum, and the payload.
func writeLegacyChunk(w *Writer, payload []byte, compressed bool, crc uint32) error {
	hdr := w.hdrScratch[:legacyChunkHeaderSize]

	if compressed {
		hdr[0] = legacyChunkCompressed
	} else {
		hdr[0] = legacyChunkUncompressed
	}

	hdr[1] = byte(len(payload) >> 8)
	hdr[2] = byte(len(payload))
	binary.BigEndian.PutUint32(hdr[3:], crc)

	if _, err := w.sink.Write(hdr); err != nil {
		return err
	}

	_, err := w.sink.Write(payload)
	return err
}
