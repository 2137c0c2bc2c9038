// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

// copyBackRef copies length bytes from dst[outputPos-dist:] to dst[outputPos:].
// If dist < length, source and destination overlap; the copy must run
// byte-by-byte forward so that repeated bytes (RLE) are correct. The built-in
// copy does not handle overlapping regions where src precedes dst. Callers
// validate dist and length against the output bounds.
func copyBackRef(dst []byte, outputPos, dist, length int) {
	mPos := outputPos - dist

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return
	}

	for i := range length {
		dst[outputPos+i] = dst[mPos+i]
	}
}
