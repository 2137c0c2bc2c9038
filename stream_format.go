// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// The two stream formats share one reader/writer skeleton and differ only in
// header shape. A streamVariant bundles the format constants with two pure
// functions: parseFrameHeader classifies a chunk header, extractCrc locates
// the checksum and the payload start.

// frameAction tells the reader what to do with a chunk.
type frameAction int

const (
	// actionRaw delivers the payload bytes unchanged.
	actionRaw frameAction = iota
	// actionUncompress decompresses the payload before delivery.
	actionUncompress
	// actionSkip consumes the payload without delivering anything.
	actionSkip
)

// frameMeta is the parsed form of a chunk header.
type frameMeta struct {
	action frameAction
	// length is the payload byte count following the header.
	length int
	// verifyMagic marks a skipped chunk whose payload must equal the stream
	// identifier body (framed resynchronization markers).
	verifyMagic bool
}

// streamVariant describes one stream format.
type streamVariant struct {
	name string

	// header is written at stream start and expected at stream open.
	header []byte
	// chunkHeaderSize is the fixed per-chunk header length.
	chunkHeaderSize int
	// maxBlockSize bounds the uncompressed bytes per frame on the write side.
	maxBlockSize int
	// defaultMinRatio is the format's compressed/raw emission threshold.
	defaultMinRatio float64

	// parseFrameHeader classifies hdr (chunkHeaderSize bytes) into a
	// frameMeta or a format error.
	parseFrameHeader func(hdr []byte) (frameMeta, error)

	// extractCrc returns the stored checksum for a data chunk and the offset
	// into the payload at which the frame data starts.
	extractCrc func(hdr, payload []byte) (crc uint32, payloadOffset int)

	// writeChunk emits one data chunk: header, checksum, payload, laid out
	// per the format.
	writeChunk func(w *Writer, payload []byte, compressed bool, crc uint32) error
}
