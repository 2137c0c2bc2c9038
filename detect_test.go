package snappy

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestDetermineReader_PicksFramed(t *testing.T) {
	data := bytes.Repeat([]byte("framed detection payload "), 100)
	stream := framedCompress(t, data, nil)

	r, err := DetermineReader(bytes.NewReader(stream), true)
	if err != nil {
		t.Fatalf("DetermineReader failed: %v", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch through detection")
	}
}

func TestDetermineReader_PicksLegacy(t *testing.T) {
	data := bytes.Repeat([]byte("legacy detection payload "), 100)
	stream := legacyCompress(t, data, nil)

	r, err := DetermineReader(bytes.NewReader(stream), true)
	if err != nil {
		t.Fatalf("DetermineReader failed: %v", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch through detection")
	}
}

func TestDetermineReader_RejectsUnknownHeader(t *testing.T) {
	_, err := DetermineReader(bytes.NewReader([]byte("definitely not a snappy stream")), true)
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}

func TestDetermineReader_EmptySource(t *testing.T) {
	_, err := DetermineReader(bytes.NewReader(nil), true)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}
