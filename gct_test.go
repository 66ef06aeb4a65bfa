package gct_test

import (
	"fmt"
	"testing"

	"github.com/gctlib/go-gct"
)

func TestInitHeaderRejectsBadSize(t *testing.T) {
	var hdr gct.Header
	if err := gct.InitHeader(&hdr, 10, 16, gct.SupportedFlags); err != gct.ErrInvalidSize {
		t.Errorf("InitHeader(10,16) = %v, want ErrInvalidSize", err)
	}
}

func TestInitHeaderRejectsBadFlags(t *testing.T) {
	var hdr gct.Header
	if err := gct.InitHeader(&hdr, 16, 16, 0x5); err != gct.ErrUnsupportedFlags {
		t.Errorf("InitHeader with flags 0x5 = %v, want ErrUnsupportedFlags", err)
	}
}

func solidImage(width, height int, c gct.Color) []gct.Color {
	pixels := make([]gct.Color, width*height)
	for i := range pixels {
		pixels[i] = c
	}
	return pixels
}

func TestEncodeDecodeRoundTripSolidColor(t *testing.T) {
	const width, height = 16, 8
	var hdr gct.Header
	if err := gct.InitHeader(&hdr, width, height, gct.SupportedFlags); err != gct.Success {
		t.Fatalf("InitHeader: %v", err)
	}

	pixels := solidImage(width, height, gct.Color{R: 255, G: 0, B: 255, A: 255})

	n := gct.EncodedSize(hdr)
	if n <= 0 {
		t.Fatalf("EncodedSize = %d", n)
	}
	payload := make([]byte, n)
	if err := gct.Encode(hdr, pixels, payload); err != gct.Success {
		t.Fatalf("Encode: %v", err)
	}

	headerBytes, err := hdr.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	file := append(headerBytes, payload...)

	dn := gct.DecodedSize(file)
	if dn != int64(width*height) {
		t.Fatalf("DecodedSize = %d, want %d", dn, width*height)
	}
	out := make([]gct.Color, dn)
	gotW, gotH, decErr := gct.Decode(file, out)
	if decErr != gct.Success {
		t.Fatalf("Decode: %v", decErr)
	}
	if gotW != width || gotH != height {
		t.Fatalf("Decode dims = %dx%d, want %dx%d", gotW, gotH, width, height)
	}
	for i, px := range out {
		want := pixels[i]
		if px != want {
			t.Errorf("pixel %d = %+v, want %+v", i, px, want)
		}
	}
}

func TestDecodeRejectsShortFile(t *testing.T) {
	_, _, err := gct.Decode(make([]byte, 10), make([]gct.Color, 4))
	if err != gct.ErrInvalidImage {
		t.Errorf("Decode(short file) = %v, want ErrInvalidImage", err)
	}
}

func TestDecodeRejectsBadHeader(t *testing.T) {
	file := make([]byte, gct.HeaderSize+8)
	_, _, err := gct.Decode(file, make([]gct.Color, 4))
	if err != gct.ErrInvalidImage {
		t.Errorf("Decode(zeroed header) = %v, want ErrInvalidImage", err)
	}
}

func TestEncodeRejectsNilBuffers(t *testing.T) {
	var hdr gct.Header
	gct.InitHeader(&hdr, 8, 8, gct.SupportedFlags)
	if err := gct.Encode(hdr, nil, make([]byte, 8)); err != gct.ErrNullPointer {
		t.Errorf("Encode(nil pixels) = %v, want ErrNullPointer", err)
	}
	if err := gct.Encode(hdr, make([]gct.Color, 64), nil); err != gct.ErrNullPointer {
		t.Errorf("Encode(nil out) = %v, want ErrNullPointer", err)
	}
}

func TestErrorStringKnownAndUnknown(t *testing.T) {
	if s, ok := gct.ErrorString(gct.ErrInvalidSize); !ok || s == "" {
		t.Errorf("ErrorString(ErrInvalidSize) = %q, %v", s, ok)
	}
	if _, ok := gct.ErrorString(gct.Error(999)); ok {
		t.Errorf("ErrorString(999) reported ok, want not found")
	}
}

// TestRoundTripParallel exercises Encode/Decode concurrently across
// several differently sized images, mirroring the concurrency invariant
// that the codec holds no shared mutable state between calls.
func TestRoundTripParallel(t *testing.T) {
	sizes := []struct{ w, h int }{{8, 8}, {16, 8}, {8, 16}, {32, 24}, {16, 16}}
	for _, sz := range sizes {
		sz := sz
		t.Run(fmt.Sprintf("%dx%d", sz.w, sz.h), func(t *testing.T) {
			t.Parallel()
			var hdr gct.Header
			if err := gct.InitHeader(&hdr, sz.w, sz.h, gct.SupportedFlags); err != gct.Success {
				t.Fatalf("InitHeader: %v", err)
			}
			pixels := solidImage(sz.w, sz.h, gct.Color{R: 10, G: 20, B: 30, A: 40})
			payload := make([]byte, gct.EncodedSize(hdr))
			if err := gct.Encode(hdr, pixels, payload); err != gct.Success {
				t.Fatalf("Encode: %v", err)
			}
			headerBytes, _ := hdr.MarshalBinary()
			file := append(headerBytes, payload...)
			out := make([]gct.Color, sz.w*sz.h)
			w, h, err := gct.Decode(file, out)
			if err != gct.Success || w != sz.w || h != sz.h {
				t.Fatalf("Decode: w=%d h=%d err=%v", w, h, err)
			}
		})
	}
}
