// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// WriterOptions configures a stream writer. The zero value selects the
// defaults of the chosen format.
type WriterOptions struct {
	// BlockSize is the amount of raw data buffered before a frame is
	// emitted. 0 selects the format default (65536 framed, 32768 legacy);
	// explicit values must be in (0, max] for the format.
	BlockSize int
	// MinCompressionRatio is the compressed/raw threshold at or below which
	// a compressed frame is written instead of a raw one. 0 selects the
	// format default (0.85 framed, 7/8 legacy); explicit values must be in
	// (0, 1].
	MinCompressionRatio float64
	// DisableChecksums writes a zero CRC field instead of the masked CRC32C
	// of the frame's uncompressed bytes. Readers verifying checksums will
	// reject such streams.
	DisableChecksums bool
	// Pool supplies the writer's scratch buffers. Nil selects
	// DefaultBufferPool.
	Pool BufferPool
}

// DefaultWriterOptions returns options selecting the format defaults.
func DefaultWriterOptions() *WriterOptions {
	return &WriterOptions{}
}

// ReaderOptions configures a stream reader.
type ReaderOptions struct {
	// VerifyChecksums recomputes the masked CRC32C of every data frame's
	// uncompressed bytes and compares it to the stored value.
	VerifyChecksums bool
	// MaxFrameSize caps the declared length a frame header may carry; longer
	// frames fail with ErrInvalidChunkLength before any buffer grows. 0
	// disables the cap. A cap defends against memory exhaustion when reading
	// untrusted input.
	MaxFrameSize int
	// Pool supplies the reader's scratch buffers. Nil selects
	// DefaultBufferPool.
	Pool BufferPool
}

// DefaultReaderOptions returns options with checksum verification enabled
// and no frame size cap.
func DefaultReaderOptions() *ReaderOptions {
	return &ReaderOptions{VerifyChecksums: true}
}
