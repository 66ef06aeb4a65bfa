package block

import "testing"

func TestPackColor16RoundTrip(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{123, 45, 200},
	}
	for _, c := range cases {
		packed := PackColor16(c.r, c.g, c.b)
		got := packed.Expand8()
		if abs(int(got.R)-int(c.r)) > 4 || abs(int(got.G)-int(c.g)) > 2 || abs(int(got.B)-int(c.b)) > 4 {
			t.Errorf("PackColor16(%d,%d,%d).Expand8() = %+v, quantization out of range", c.r, c.g, c.b, got)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestBuildPaletteOrdering(t *testing.T) {
	a := PackColor16(200, 200, 200)
	b := PackColor16(0, 0, 0)
	pal := BuildPalette(a, b)

	if pal[0] != a.Expand8() {
		t.Errorf("pal[0] = %+v, want endpoint a %+v", pal[0], a.Expand8())
	}
	if pal[1] != b.Expand8() {
		t.Errorf("pal[1] = %+v, want endpoint b %+v", pal[1], b.Expand8())
	}
	// p2 leans 2/3 toward b, p3 leans 2/3 toward a: p2 < p3 when a > b.
	if !(pal[2].R < pal[3].R) {
		t.Errorf("pal[2].R=%d should be less than pal[3].R=%d (b-first ramp)", pal[2].R, pal[3].R)
	}
}

func TestEncodeDecodeConstantTile(t *testing.T) {
	// 0 and 255 are exact fixed points of the 5/6-bit RGB565 quantization,
	// so this constant tile round-trips bit-for-bit.
	var texels [16]Color
	for i := range texels {
		texels[i] = Color{R: 255, G: 0, B: 255}
	}
	blk := Encode(texels)

	var dst [16]Color
	Decode(blk, dst[:], 4)
	for i, c := range dst {
		if c.R != 255 || c.G != 0 || c.B != 255 {
			t.Errorf("texel %d = %+v, want constant (255,0,255)", i, c)
		}
	}
}

func TestEncodeDecodeGradientApproximatesInput(t *testing.T) {
	var texels [16]Color
	for i := range texels {
		v := uint8(i * 17)
		texels[i] = Color{R: v, G: 255 - v, B: 128}
	}
	blk := Encode(texels)

	var dst [16]Color
	Decode(blk, dst[:], 4)
	for i, want := range texels {
		got := dst[i]
		if abs(int(got.R)-int(want.R)) > 24 {
			t.Errorf("texel %d R: got %d, want near %d", i, got.R, want.R)
		}
	}
}

func TestAlphaPaletteIsAFirst(t *testing.T) {
	a := PackColor16(0, 240, 0)
	b := PackColor16(0, 0, 0)
	pal := BuildAlphaPalette(a, b)

	if pal[1] != 0 {
		t.Fatalf("pal[1] = %d, want 0", pal[1])
	}
	// a-first: apal[2] leans toward a (the higher endpoint here).
	if !(pal[2] > pal[3]) {
		t.Errorf("pal[2]=%d should exceed pal[3]=%d (a-first ramp)", pal[2], pal[3])
	}
}

func TestEncodeAlphaDecodeAlphaRoundTrip(t *testing.T) {
	var tile [16]Color
	for i := range tile {
		tile[i] = Color{G: uint8(i * 17)}
	}
	blk := EncodeAlpha(tile)

	var dst [16]uint8
	DecodeAlphaPlane(blk, dst[:], 4)
	// The ramp between the extremes 0 and 255 is 0, 85, 170, 255, so a
	// value 17*i is at most 34 from its nearest entry.
	for i := range tile {
		if abs(int(dst[i])-int(tile[i].G)) > 34 {
			t.Errorf("alpha texel %d: got %d, want near %d", i, dst[i], tile[i].G)
		}
	}
}

func TestPixelIndexBitPositions(t *testing.T) {
	// MSB-first: texel (0,0) occupies the two most significant bits.
	table := uint32(0x3) << 30
	if got := pixelIndex(table, 0, 0); got != 0x3 {
		t.Errorf("pixelIndex(table, 0, 0) = %d, want 3", got)
	}
	table = uint32(0x1)
	if got := pixelIndex(table, 3, 3); got != 0x1 {
		t.Errorf("pixelIndex(table, 3, 3) = %d, want 1", got)
	}
}
