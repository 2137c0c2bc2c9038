package snappy

import "testing"

func TestMaskedCrc32c_KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want uint32
	}{
		// Reference value from the stream format: the masked CRC stored for
		// this block by every compatible implementation.
		{name: "mixed-runs", data: []byte("aaaaaaaaaaaabbbbbbbaaaaaa"), want: 0x9274cda8},
		// crc32c("") == 0, so the mask constant falls straight through.
		{name: "empty", data: nil, want: 0xa282ead8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := maskedCrc32c(tc.data); got != tc.want {
				t.Fatalf("maskedCrc32c = %#08x, want %#08x", got, tc.want)
			}
		})
	}
}

func TestMaskedCrc32c_DiffersFromRawCrc(t *testing.T) {
	data := []byte("the mask exists so a stored crc cannot checksum to itself")

	masked := maskedCrc32c(data)
	unmasked := (masked - 0xa282ead8)
	unmasked = unmasked>>17 | unmasked<<15

	if masked == unmasked {
		t.Fatal("mask transform must change the checksum")
	}
}
