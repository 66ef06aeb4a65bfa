// Package block implements the GCT block codec: compressing a 4x4 RGBA
// tile into an 8-byte BC1/DXT1-style block, and decompressing it back.
//
// The on-disk layout is big-endian and MSB-first (see bits.go), unlike
// most reference BC1 encoders, which write little-endian/LSB-first. The
// encoders build their blocks in that "natural" bit order and convert
// them with a closed-form bitwise operation on output; Decode reads the
// GCT order directly and needs no conversion.
package block

// Color is an 8-bit-per-channel RGBA pixel, the public pixel type for a
// single block texel.
type Color struct {
	R, G, B, A uint8
}

// Color16 is a packed 16-bit RGB565 triple used as a block endpoint:
// r occupies bits 11..15, g bits 5..10, b bits 0..4.
type Color16 uint16

// PackColor16 packs 8-bit channels down to RGB565, rounding each channel
// to the nearest 5- or 6-bit level.
func PackColor16(r, g, b uint8) Color16 {
	r5 := (uint16(r)*31 + 127) / 255
	g6 := (uint16(g)*63 + 127) / 255
	b5 := (uint16(b)*31 + 127) / 255
	return Color16(r5<<11 | g6<<5 | b5)
}

// R5 returns the 5-bit red component.
func (c Color16) R5() uint8 { return uint8(c>>11) & 0x1f }

// G6 returns the 6-bit green component.
func (c Color16) G6() uint8 { return uint8(c>>5) & 0x3f }

// B5 returns the 5-bit blue component.
func (c Color16) B5() uint8 { return uint8(c) & 0x1f }

// expand5 widens a 5-bit channel to 8 bits by replicating the top bits
// into the low bits, matching the reference (x<<3)|(x>>2) expansion.
func expand5(x uint8) uint8 { return x<<3 | x>>2 }

// expand6 widens a 6-bit channel to 8 bits, matching (x<<2)|(x>>4).
func expand6(x uint8) uint8 { return x<<2 | x>>4 }

// Expand8 converts a packed Color16 endpoint to an 8-bit-per-channel
// Color, per spec step 2 of the block decode contract.
func (c Color16) Expand8() Color {
	return Color{R: expand5(c.R5()), G: expand6(c.G6()), B: expand5(c.B5())}
}
