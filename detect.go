// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import (
	"bufio"
	"io"
)

// DetermineReader inspects the leading bytes of src and returns a framed or
// legacy Reader accordingly: 0xff selects x-snappy-framed, 's' the legacy
// format, anything else fails with ErrInvalidHeader. src is wrapped in a
// bufio.Reader when it is not one already, so no bytes are lost to peeking;
// the returned Reader owns the wrapped source.
func DetermineReader(src io.Reader, verifyChecksums bool) (*Reader, error) {
	return DetermineReaderOptions(src, &ReaderOptions{VerifyChecksums: verifyChecksums})
}

// DetermineReaderOptions is DetermineReader with explicit options.
func DetermineReaderOptions(src io.Reader, opts *ReaderOptions) (*Reader, error) {
	br, ok := src.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(src)
	}

	hdr, err := br.Peek(len(framedHeader))
	if len(hdr) == 0 {
		return nil, noEOF(err)
	}

	switch hdr[0] {
	case framedHeader[0]:
		return newStreamReader(br, framedVariant, opts)
	case legacyHeader[0]:
		return newStreamReader(br, legacyVariant, opts)
	default:
		return nil, ErrInvalidHeader
	}
}
