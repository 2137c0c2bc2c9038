package snappy

import (
	"bytes"
	"errors"
	"testing"
)

func TestUncompress_TruncatedLiteralReportsInputLength(t *testing.T) {
	// Declared length 5, literal of 5, but only two literal bytes present.
	src := []byte{0x05, 0x10, 'a', 'b'}

	_, err := Uncompress(src)

	var corruption *CorruptionError
	if !errors.As(err, &corruption) {
		t.Fatalf("expected CorruptionError, got %v", err)
	}
	if corruption.Offset != len(src) {
		t.Fatalf("corruption offset = %d, want %d", corruption.Offset, len(src))
	}
	if !errors.Is(err, ErrCorruption) {
		t.Fatal("CorruptionError must match ErrCorruption")
	}
}

func TestUncompress_TruncatedCompressedInputAlwaysFails(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 256)
	cmp := Compress(data)

	maxCut := min(48, len(cmp)-1)
	for cut := 1; cut <= maxCut; cut++ {
		if _, err := Uncompress(cmp[:len(cmp)-cut]); !errors.Is(err, ErrCorruption) {
			t.Fatalf("cut=%d: expected ErrCorruption, got %v", cut, err)
		}
	}
}

func TestUncompress_CopyValidation(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
	}{
		// Copy-2 at offset 2 with only one byte produced.
		{name: "offset-beyond-start", src: []byte{0x05, 0x00, 'a', 0x0e, 0x02, 0x00}},
		// Copy-2 at offset 0.
		{name: "offset-zero", src: []byte{0x05, 0x00, 'a', 0x0e, 0x00, 0x00}},
		// Copy of 64 with only 4 output bytes remaining.
		{name: "exceeds-output", src: []byte{0x05, 0x00, 'a', 0xfe, 0x01, 0x00}},
		// Copy-1 opcode missing its offset byte.
		{name: "truncated-copy1", src: []byte{0x05, 0x00, 'a', 0x0d}},
		// Copy-4 opcode with only two offset bytes.
		{name: "truncated-copy4", src: []byte{0x05, 0x00, 'a', 0x0f, 0x01, 0x00}},
		// Opcodes produce less than the declared length.
		{name: "short-output", src: []byte{0x05, 0x04, 'a', 'b'}},
		// Literal header claims four length bytes, none present.
		{name: "truncated-literal-length", src: []byte{0x05, 0xfc}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Uncompress(tc.src); !errors.Is(err, ErrCorruption) {
				t.Fatalf("expected ErrCorruption, got %v", err)
			}
		})
	}
}

func TestUncompress_OverlappingCopyIsRLE(t *testing.T) {
	// One literal byte, then a copy of 5 at offset 1: classic run-length form.
	src := []byte{0x06, 0x00, 'a', 0x12, 0x01, 0x00}

	out, err := Uncompress(src)
	if err != nil {
		t.Fatalf("Uncompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte("aaaaaa")) {
		t.Fatalf("overlapping copy = %q, want aaaaaa", out)
	}
}

func TestUncompress_Copy4Accepted(t *testing.T) {
	// The encoder never emits copy-4, but the decoder must accept it.
	src := []byte{0x08, 0x0c, 'a', 'b', 'c', 'd', 0x0f, 0x04, 0x00, 0x00, 0x00}

	out, err := Uncompress(src)
	if err != nil {
		t.Fatalf("Uncompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte("abcdabcd")) {
		t.Fatalf("copy-4 decode = %q, want abcdabcd", out)
	}
}

func TestUncompressInto_DestinationTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("destination"), 64)
	cmp := Compress(data)

	_, err := UncompressInto(cmp, make([]byte, len(data)-1))
	if !errors.Is(err, ErrCorruption) {
		t.Fatalf("expected ErrCorruption, got %v", err)
	}
}

func TestUncompressInto_WritesExactlyDeclaredLength(t *testing.T) {
	data := bytes.Repeat([]byte("exact"), 100)
	cmp := Compress(data)

	dst := bytes.Repeat([]byte{0xEE}, len(data)+64)
	n, err := UncompressInto(cmp, dst)
	if err != nil {
		t.Fatalf("UncompressInto failed: %v", err)
	}
	if n != len(data) {
		t.Fatalf("written = %d, want %d", n, len(data))
	}
	if !bytes.Equal(dst[:n], data) {
		t.Fatal("decoded output mismatch")
	}

	for i := n; i < len(dst); i++ {
		if dst[i] != 0xEE {
			t.Fatalf("byte %d beyond declared length was touched", i)
		}
	}
}

func TestGetUncompressedLength_Corruption(t *testing.T) {
	if _, err := GetUncompressedLength(nil); !errors.Is(err, ErrCorruption) {
		t.Fatalf("expected ErrCorruption for empty input, got %v", err)
	}

	if _, err := GetUncompressedLength([]byte{0xff, 0xff, 0xff, 0xff, 0x7f}); !errors.Is(err, ErrCorruption) {
		t.Fatal("expected ErrCorruption for oversized varint")
	}
}

func FuzzUncompressIsSafe(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x05, 0x10, 'a', 'b'})
	f.Add(Compress(bytes.Repeat([]byte("seed"), 100)))

	f.Fuzz(func(t *testing.T, src []byte) {
		// Either a buffer of exactly the declared length comes back, or a
		// corruption error; never a panic or an out-of-bounds access.
		out, err := Uncompress(src)
		if err != nil {
			if !errors.Is(err, ErrCorruption) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}

		declared, lenErr := GetUncompressedLength(src)
		if lenErr != nil {
			t.Fatalf("Uncompress succeeded but length decode failed: %v", lenErr)
		}
		if len(out) != declared {
			t.Fatalf("output length %d does not match declared %d", len(out), declared)
		}
	})
}

func FuzzUncompressMutatedBlocks(f *testing.F) {
	base := Compress(bytes.Repeat([]byte("mutation fodder "), 256))
	f.Add(base, 0, byte(0xff))

	f.Fuzz(func(t *testing.T, cmp []byte, pos int, bit byte) {
		if len(cmp) == 0 {
			return
		}

		mutated := append([]byte(nil), cmp...)
		mutated[abs(pos)%len(mutated)] ^= bit

		out, err := Uncompress(mutated)
		if err == nil {
			if declared, lenErr := GetUncompressedLength(mutated); lenErr != nil || len(out) != declared {
				t.Fatal("successful decode must match the declared length")
			}
		} else if !errors.Is(err, ErrCorruption) {
			t.Fatalf("unexpected error kind: %v", err)
		}
	})
}

func abs(v int) int {
	if v < 0 {
		if v == -v {
			return 0
		}
		return -v
	}
	return v
}
