// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import "fmt"

// MaxCompressedLength returns a safe upper bound on the compressed size of n
// input bytes. The compressor never writes past it.
func MaxCompressedLength(n int) int {
	return 32 + n + n/6
}

// Compress compresses src as a single Snappy block and returns the result in
// a freshly allocated buffer trimmed to the compressed size.
func Compress(src []byte) []byte {
	ctx := acquireCompressionContext()
	defer releaseCompressionContext(ctx)

	dst := make([]byte, MaxCompressedLength(len(src)))
	n := compressAll(src, dst, ctx.table)

	return dst[:n:n]
}

// CompressInto compresses src into dst and returns the number of bytes
// written at dst[0:]. dst must hold at least MaxCompressedLength(len(src))
// bytes, otherwise ErrInvalidArgument is returned. ctx is caller-owned
// scratch and may be reused across calls; nil draws one from an internal
// pool. CompressInto performs no allocation when ctx is non-nil.
func CompressInto(src, dst []byte, ctx *CompressionContext) (int, error) {
	if need := MaxCompressedLength(len(src)); len(dst) < need {
		return 0, fmt.Errorf("%w: destination holds %d bytes, need %d", ErrInvalidArgument, len(dst), need)
	}

	if ctx == nil {
		ctx = acquireCompressionContext()
		defer releaseCompressionContext(ctx)
	}

	return compressAll(src, dst, ctx.table), nil
}
