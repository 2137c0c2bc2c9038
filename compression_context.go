// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "sync"

// CompressionContext is the compressor's scratch hash table. It is owned by
// the caller and passed by reference; the compressor writes into it and never
// reads its prior contents as meaningful. A single context must not be used
// by concurrent compressions; distinct contexts are fully independent.
type CompressionContext struct {
	table []uint16
}

// NewCompressionContext returns a context sized for any input.
func NewCompressionContext() *CompressionContext {
	return &CompressionContext{table: make([]uint16, maxHashTableSize)}
}

// compressionContextPool recycles contexts for callers that pass nil.
var compressionContextPool = sync.Pool{
	New: func() any {
		return NewCompressionContext()
	},
}

// acquireCompressionContext acquires a context from the pool.
func acquireCompressionContext() *CompressionContext {
	return compressionContextPool.Get().(*CompressionContext)
}

// releaseCompressionContext releases a context to the pool.
func releaseCompressionContext(ctx *CompressionContext) {
	if ctx == nil {
		return
	}

	compressionContextPool.Put(ctx)
}
