package gct_test

import (
	"testing"

	"github.com/gctlib/go-gct"
)

// addMinimalSeeds adds a handful of hand-built valid GCT files to the
// fuzz corpus.
func addMinimalSeeds(f *testing.F) {
	f.Helper()
	for _, sz := range [][2]int{{8, 8}, {16, 8}, {32, 24}} {
		var hdr gct.Header
		if err := gct.InitHeader(&hdr, sz[0], sz[1], gct.SupportedFlags); err != gct.Success {
			continue
		}
		pixels := make([]gct.Color, sz[0]*sz[1])
		for i := range pixels {
			pixels[i] = gct.Color{R: uint8(i), G: uint8(i * 3), B: uint8(i * 7), A: uint8(i * 11)}
		}
		payload := make([]byte, gct.EncodedSize(hdr))
		if err := gct.Encode(hdr, pixels, payload); err != gct.Success {
			continue
		}
		headerBytes, _ := hdr.MarshalBinary()
		f.Add(append(headerBytes, payload...))
	}
}

// FuzzDecode ensures no input to Decode can cause a panic, regardless of
// how malformed the header or payload is.
func FuzzDecode(f *testing.F) {
	addMinimalSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		n := gct.DecodedSize(data)
		if n < 0 {
			return
		}
		out := make([]gct.Color, n)
		gct.Decode(data, out) //nolint:errcheck
	})
}

// FuzzRoundTrip checks that any buffer DecodedSize accepts as large
// enough also survives an actual Decode call without mismatched
// dimensions, for inputs built from a previously-encoded file with
// payload bytes mutated by the fuzzer.
func FuzzRoundTrip(f *testing.F) {
	addMinimalSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < gct.HeaderSize {
			return
		}
		var hdr gct.Header
		if err := hdr.UnmarshalBinary(data); err != nil {
			return
		}
		if hdr.Validate() != gct.Success {
			return
		}
		n := gct.DecodedSize(data)
		if n < 0 {
			return
		}
		out := make([]gct.Color, n)
		w, h, err := gct.Decode(data, out)
		if err != gct.Success {
			return
		}
		if int64(w*h) != n {
			t.Fatalf("Decode dims %dx%d disagree with DecodedSize %d", w, h, n)
		}
	})
}
