// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "sync"

// BufferPool recycles the scratch buffers used by stream readers and writers,
// keyed by role. Alloc methods return a buffer of length >= size (possibly
// larger, never smaller). A released buffer must not be used again. One pool
// may back many streams concurrently; implementations must be safe for use
// from multiple goroutines.
type BufferPool interface {
	// AllocInput returns a buffer for raw frame bytes read off the source.
	AllocInput(size int) []byte
	// ReleaseInput returns an input buffer for reuse.
	ReleaseInput(buf []byte)
	// AllocOutput returns a buffer for user bytes awaiting a frame boundary.
	AllocOutput(size int) []byte
	// ReleaseOutput returns an output buffer for reuse.
	ReleaseOutput(buf []byte)
	// AllocEncoding returns a buffer for freshly compressed frame payloads.
	AllocEncoding(size int) []byte
	// ReleaseEncoding returns an encoding buffer for reuse.
	ReleaseEncoding(buf []byte)
	// AllocDecoding returns a buffer for decompressed frame contents.
	AllocDecoding(size int) []byte
	// ReleaseDecoding returns a decoding buffer for reuse.
	ReleaseDecoding(buf []byte)
}

// DefaultBufferPool is the process-wide pool used when stream options carry
// no explicit pool. The runtime may drop its buffers under memory pressure.
var DefaultBufferPool BufferPool = &pooledBuffers{}

// pooledBuffers is a role-keyed cache on top of sync.Pool.
type pooledBuffers struct {
	input    sync.Pool
	output   sync.Pool
	encoding sync.Pool
	decoding sync.Pool
}

// AllocInput implements BufferPool.
func (p *pooledBuffers) AllocInput(size int) []byte { return allocFrom(&p.input, size) }

// ReleaseInput implements BufferPool.
func (p *pooledBuffers) ReleaseInput(buf []byte) { releaseTo(&p.input, buf) }

// AllocOutput implements BufferPool.
func (p *pooledBuffers) AllocOutput(size int) []byte { return allocFrom(&p.output, size) }

// ReleaseOutput implements BufferPool.
func (p *pooledBuffers) ReleaseOutput(buf []byte) { releaseTo(&p.output, buf) }

// AllocEncoding implements BufferPool.
func (p *pooledBuffers) AllocEncoding(size int) []byte { return allocFrom(&p.encoding, size) }

// ReleaseEncoding implements BufferPool.
func (p *pooledBuffers) ReleaseEncoding(buf []byte) { releaseTo(&p.encoding, buf) }

// AllocDecoding implements BufferPool.
func (p *pooledBuffers) AllocDecoding(size int) []byte { return allocFrom(&p.decoding, size) }

// ReleaseDecoding implements BufferPool.
func (p *pooledBuffers) ReleaseDecoding(buf []byte) { releaseTo(&p.decoding, buf) }

// allocFrom returns a pooled buffer of length >= size, or a fresh one when
// the pooled buffer is too small.
func allocFrom(p *sync.Pool, size int) []byte {
	if v := p.Get(); v != nil {
		if buf := *(v.(*[]byte)); len(buf) >= size {
			return buf
		}
	}

	return make([]byte, size)
}

// releaseTo stores buf for reuse.
func releaseTo(p *sync.Pool, buf []byte) {
	if buf == nil {
		return
	}

	p.Put(&buf)
}

// NopBufferPool allocates fresh buffers and recycles nothing. Useful when
// pooling is undesirable, e.g. short-lived streams or arena-managed callers.
type NopBufferPool struct{}

// AllocInput implements BufferPool.
func (NopBufferPool) AllocInput(size int) []byte { return make([]byte, size) }

// ReleaseInput implements BufferPool.
func (NopBufferPool) ReleaseInput([]byte) {}

// AllocOutput implements BufferPool.
func (NopBufferPool) AllocOutput(size int) []byte { return make([]byte, size) }

// ReleaseOutput implements BufferPool.
func (NopBufferPool) ReleaseOutput([]byte) {}

// AllocEncoding implements BufferPool.
func (NopBufferPool) AllocEncoding(size int) []byte { return make([]byte, size) }

// ReleaseEncoding implements BufferPool.
func (NopBufferPool) ReleaseEncoding([]byte) {}

// AllocDecoding implements BufferPool.
func (NopBufferPool) AllocDecoding(size int) []byte { return make([]byte, size) }

// ReleaseDecoding implements BufferPool.
func (NopBufferPool) ReleaseDecoding([]byte) {}
