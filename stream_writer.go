// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import (
	"fmt"
	"io"
)

// Writer frames user bytes into a Snappy stream. It buffers writes up to the
// block size, compresses each block, and emits a compressed or raw chunk
// depending on the achieved ratio. Create one with NewFramedWriter or
// NewLegacyWriter. Not safe for concurrent use of a single instance.
type Writer struct {
	sink    io.Writer
	variant *streamVariant
	pool    BufferPool
	ctx     *CompressionContext

	// buf holds user bytes awaiting a frame boundary; scratch receives the
	// compressed payload. Both come from the pool and are released on Close.
	buf     []byte
	scratch []byte

	hdrScratch [8]byte

	blockSize int
	minRatio  float64
	checksums bool
	pos       int
	closed    bool
}

// newStreamWriter builds a writer for the given format and writes the stream
// header immediately.
func newStreamWriter(sink io.Writer, variant *streamVariant, opts *WriterOptions) (*Writer, error) {
	if sink == nil {
		return nil, fmt.Errorf("%w: nil sink", ErrInvalidArgument)
	}

	if opts == nil {
		opts = DefaultWriterOptions()
	}

	blockSize := opts.BlockSize
	if blockSize == 0 {
		blockSize = variant.maxBlockSize
	}
	if blockSize <= 0 || blockSize > variant.maxBlockSize {
		return nil, fmt.Errorf("%w: block size %d must be in (0, %d]", ErrInvalidArgument, opts.BlockSize, variant.maxBlockSize)
	}

	minRatio := opts.MinCompressionRatio
	if minRatio == 0 {
		minRatio = variant.defaultMinRatio
	}
	if minRatio < 0 || minRatio > 1 {
		return nil, fmt.Errorf("%w: min compression ratio %v must be in (0, 1]", ErrInvalidArgument, opts.MinCompressionRatio)
	}

	pool := opts.Pool
	if pool == nil {
		pool = DefaultBufferPool
	}

	w := &Writer{
		sink:      sink,
		variant:   variant,
		pool:      pool,
		ctx:       acquireCompressionContext(),
		buf:       pool.AllocOutput(blockSize),
		scratch:   pool.AllocEncoding(MaxCompressedLength(blockSize)),
		blockSize: blockSize,
		minRatio:  minRatio,
		checksums: !opts.DisableChecksums,
	}

	if _, err := sink.Write(variant.header); err != nil {
		w.releaseBuffers()
		return nil, err
	}

	return w, nil
}

// Write buffers p, emitting frames at every block boundary. Full blocks in
// the middle of a large write are framed directly from p without copying.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}

	total := len(p)

	// Easy case: everything fits in the current block.
	free := w.blockSize - w.pos
	if free >= len(p) {
		w.pos += copy(w.buf[w.pos:w.blockSize], p)
		return total, nil
	}

	var n int
	if w.pos > 0 {
		n = copy(w.buf[w.pos:w.blockSize], p[:free])
		w.pos = w.blockSize

		if err := w.flushBuffer(); err != nil {
			return n, err
		}

		p = p[free:]
	}

	for len(p) >= w.blockSize {
		if err := w.writeFrame(p[:w.blockSize]); err != nil {
			return n, err
		}

		n += w.blockSize
		p = p[w.blockSize:]
	}

	w.pos = copy(w.buf[:w.blockSize], p)
	return total, nil
}

// Flush emits the buffered block, if any, as a single frame. A flush with an
// empty buffer writes nothing.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}

	return w.flushBuffer()
}

// Close emits any buffered block, closes the sink when it implements
// io.Closer, and releases the writer's buffers. Close is idempotent;
// writes after Close fail with ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	err := w.flushBuffer()

	if c, ok := w.sink.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}

	w.closed = true
	w.releaseBuffers()

	return err
}

// flushBuffer frames the buffered bytes. The buffer is marked empty only on
// success, so a failed sink write does not lose or corrupt user data.
func (w *Writer) flushBuffer() error {
	if w.pos == 0 {
		return nil
	}

	if err := w.writeFrame(w.buf[:w.pos]); err != nil {
		return err
	}

	w.pos = 0
	return nil
}

// writeFrame emits one chunk for data: checksum over the raw user bytes,
// compress, then pick compressed vs raw by the ratio threshold.
func (w *Writer) writeFrame(data []byte) error {
	var crc uint32
	if w.checksums {
		crc = maskedCrc32c(data)
	}

	n := compressAll(data, w.scratch, w.ctx.table)

	if float64(n)/float64(len(data)) <= w.minRatio {
		return w.variant.writeChunk(w, w.scratch[:n], true, crc)
	}

	return w.variant.writeChunk(w, data, false, crc)
}

// releaseBuffers returns the writer's scratch to the pool.
func (w *Writer) releaseBuffers() {
	w.pool.ReleaseOutput(w.buf)
	w.pool.ReleaseEncoding(w.scratch)
	releaseCompressionContext(w.ctx)
	w.buf, w.scratch, w.ctx = nil, nil, nil
}
