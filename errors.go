// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snappy

package snappy

import (
	"errors"
	"fmt"
)

// Sentinel errors for the block codec and the stream layers.
var (
	// ErrCorruption is returned when compressed block content is malformed
	// (bad varint, bad opcode, out-of-range copy, truncated literal, decoded
	// length mismatch). Errors of this kind are *CorruptionError values and
	// carry the input offset where the fault was detected.
	ErrCorruption = errors.New("corrupt input")
	// ErrInvalidArgument is returned for programming errors: nil or short
	// destination buffers, block size or compression ratio out of range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidStreamHeader is returned when the stream identifier bytes do
	// not match the expected header.
	ErrInvalidStreamHeader = errors.New("invalid stream header")
	// ErrInvalidChunkLength is returned when a chunk header declares a length
	// outside the bounds allowed for its flag.
	ErrInvalidChunkLength = errors.New("invalid chunk length")
	// ErrUnsupportedChunk is returned when a reserved unskippable chunk flag
	// is encountered.
	ErrUnsupportedChunk = errors.New("unsupported chunk")
	// ErrCorruptChecksum is returned when checksum verification is enabled and
	// the stored CRC32C does not match the computed one.
	ErrCorruptChecksum = errors.New("corrupt input: invalid checksum")
	// ErrInvalidHeader is returned by DetermineReader when the leading bytes
	// match neither stream format.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrClosed is returned when writing to a closed stream. Reads on a
	// closed reader return io.EOF instead. Callers can use errors.Is.
	ErrClosed = errors.New("stream is closed")
)

// CorruptionError reports malformed compressed data. Offset is the byte
// offset into the compressed input at which the fault was detected; for
// truncated input it equals the input length.
type CorruptionError struct {
	Offset int
	Reason string
}

// Error implements the error interface.
func (e *CorruptionError) Error() string {
	return fmt.Sprintf("corrupt input at offset %d: %s", e.Offset, e.Reason)
}

// Unwrap makes errors.Is(err, ErrCorruption) hold for all corruption errors.
func (e *CorruptionError) Unwrap() error { return ErrCorruption }

// corruptionf builds a *CorruptionError at the given input offset.
func corruptionf(offset int, format string, args ...any) error {
	return &CorruptionError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
