// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import (
	"bytes"
	"fmt"
	"io"
)

// Reader decodes a Snappy stream chunk by chunk. Create one with
// NewFramedReader, NewLegacyReader, or DetermineReader. The first error is
// sticky: after a failed read only Close is defined. Not safe for concurrent
// use of a single instance.
type Reader struct {
	src     io.Reader
	variant *streamVariant
	pool    BufferPool

	verify       bool
	maxFrameSize int

	hdr []byte
	// input holds the raw frame read off the source; decoded holds the
	// decompressed contents of a compressed frame. Both grow to the largest
	// size seen and are released to the pool on Close.
	input   []byte
	decoded []byte
	// chunk is the unread remainder of the current frame's user bytes.
	chunk []byte

	err    error
	eof    bool
	closed bool
}

// newStreamReader builds a reader for the given format and consumes the
// stream header, validating it against the format's expected bytes.
func newStreamReader(src io.Reader, variant *streamVariant, opts *ReaderOptions) (*Reader, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}

	if opts == nil {
		opts = DefaultReaderOptions()
	}

	pool := opts.Pool
	if pool == nil {
		pool = DefaultBufferPool
	}

	r := &Reader{
		src:          src,
		variant:      variant,
		pool:         pool,
		verify:       opts.VerifyChecksums,
		maxFrameSize: opts.MaxFrameSize,
		hdr:          make([]byte, variant.chunkHeaderSize),
		input:        pool.AllocInput(variant.maxBlockSize + 5),
		decoded:      pool.AllocDecoding(variant.maxBlockSize + 5),
	}

	header := make([]byte, len(variant.header))
	if _, err := io.ReadFull(src, header); err != nil {
		r.releaseBuffers()
		return nil, noEOF(err)
	}
	if !bytes.Equal(header, variant.header) {
		r.releaseBuffers()
		return nil, ErrInvalidStreamHeader
	}

	return r, nil
}

// Read delivers bytes from the current frame until it is exhausted, then
// advances to the next data frame. It returns io.EOF at a clean stream end
// and after Close.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, io.EOF
	}
	if r.err != nil {
		return 0, r.err
	}

	for len(r.chunk) == 0 {
		if r.eof {
			return 0, io.EOF
		}

		if err := r.nextChunk(); err != nil {
			if err == io.EOF {
				r.eof = true
				return 0, io.EOF
			}

			r.err = err
			return 0, err
		}
	}

	if len(p) == 0 {
		return 0, nil
	}

	n := copy(p, r.chunk)
	r.chunk = r.chunk[n:]
	return n, nil
}

// Available reports the unread byte count of the current frame.
func (r *Reader) Available() int {
	return len(r.chunk)
}

// Close closes the underlying source when it implements io.Closer and
// releases the reader's buffers. Close is idempotent; reads after Close
// return io.EOF.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}

	r.closed = true
	r.chunk = nil
	r.releaseBuffers()

	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// nextChunk reads chunk headers until a data frame has been decoded into
// r.chunk, skipping marker and reserved-skippable chunks. It returns io.EOF
// only at a clean chunk boundary.
func (r *Reader) nextChunk() error {
	for {
		if _, err := io.ReadFull(r.src, r.hdr); err != nil {
			// A clean EOF at the header position ends the stream; a partial
			// header is a truncation.
			return err
		}

		meta, err := r.variant.parseFrameHeader(r.hdr)
		if err != nil {
			return err
		}

		if r.maxFrameSize > 0 && meta.length > r.maxFrameSize {
			return fmt.Errorf("%w: %d exceeds maximum frame size %d", ErrInvalidChunkLength, meta.length, r.maxFrameSize)
		}

		if meta.action == actionSkip {
			if err := r.skipChunk(meta); err != nil {
				return err
			}

			continue
		}

		data, err := r.readFrame(meta)
		if err != nil {
			return err
		}

		r.chunk = data
		return nil
	}
}

// skipChunk consumes a skipped chunk's payload. Resynchronization markers
// must carry the stream identifier body; reserved skippable chunks are
// discarded unread.
func (r *Reader) skipChunk(meta frameMeta) error {
	if !meta.verifyMagic {
		_, err := io.CopyN(io.Discard, r.src, int64(meta.length))
		return noEOF(err)
	}

	magic := r.input[:meta.length]
	if _, err := io.ReadFull(r.src, magic); err != nil {
		return noEOF(err)
	}
	if !bytes.Equal(magic, framedMagicBody) {
		return ErrInvalidStreamHeader
	}

	return nil
}

// readFrame reads one data frame's payload and returns its user bytes,
// decompressing and checksum-verifying as the frame demands.
func (r *Reader) readFrame(meta frameMeta) ([]byte, error) {
	if meta.length > len(r.input) {
		r.pool.ReleaseInput(r.input)
		r.input = r.pool.AllocInput(meta.length)
	}

	payload := r.input[:meta.length]
	if _, err := io.ReadFull(r.src, payload); err != nil {
		return nil, noEOF(err)
	}

	crc, off := r.variant.extractCrc(r.hdr, payload)
	data := payload[off:]

	if meta.action == actionUncompress {
		u, err := GetUncompressedLength(data)
		if err != nil {
			return nil, err
		}

		if r.maxFrameSize > 0 && u > r.maxFrameSize {
			return nil, fmt.Errorf("%w: decoded frame of %d exceeds maximum frame size %d", ErrInvalidChunkLength, u, r.maxFrameSize)
		}

		if u > len(r.decoded) {
			r.pool.ReleaseDecoding(r.decoded)
			r.decoded = r.pool.AllocDecoding(u)
		}

		n, err := UncompressInto(data, r.decoded[:u])
		if err != nil {
			return nil, err
		}

		data = r.decoded[:n]
	}

	if r.verify {
		if actual := maskedCrc32c(data); actual != crc {
			return nil, fmt.Errorf("%w: stored %#08x, computed %#08x", ErrCorruptChecksum, crc, actual)
		}
	}

	return data, nil
}

// releaseBuffers returns the reader's scratch to the pool.
func (r *Reader) releaseBuffers() {
	r.pool.ReleaseInput(r.input)
	r.pool.ReleaseDecoding(r.decoded)
	r.input, r.decoded = nil, nil
}

// noEOF maps io.EOF to io.ErrUnexpectedEOF for reads that may not end the
// stream mid-element.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
