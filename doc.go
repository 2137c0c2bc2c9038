// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

/*
Package snappy implements the Snappy block codec and the two stream formats
that frame it: the standard x-snappy-framed format and the legacy "snappy\0"
stream format.

Block output is byte-compatible with any conforming Snappy decoder; blocks
produced by other implementations decode here. A block is a varint
uncompressed length followed by literal and copy opcodes.

# Block API

One-shot, allocating:

	compressed := snappy.Compress(data)
	out, err := snappy.Uncompress(compressed)

Zero-allocation with caller-owned buffers and a reusable scratch context:

	ctx := snappy.NewCompressionContext()
	dst := make([]byte, snappy.MaxCompressedLength(len(data)))
	n, err := snappy.CompressInto(data, dst, ctx)

# Streams

Framed (x-snappy-framed, 64 KiB blocks, per-chunk CRC32C):

	w, err := snappy.NewFramedWriter(sink)
	r, err := snappy.NewFramedReader(source, true)

Legacy ("snappy\0" header, 32 KiB blocks, CRC32C in the chunk header):

	w, err := snappy.NewLegacyWriter(sink)
	r, err := snappy.NewLegacyReader(source, true)

When the format of a stream is unknown, DetermineReader inspects the first
bytes and returns the matching reader:

	r, err := snappy.DetermineReader(source, true)

Readers and writers are not safe for concurrent use of a single instance;
distinct instances are independent. Buffers are recycled through a
pluggable BufferPool.
*/
package snappy
