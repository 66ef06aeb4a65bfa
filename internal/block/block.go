package block

// Palette is the four reconstructed colors of a block: two endpoints and
// two interpolated blends.
type Palette [4]Color

// BuildPalette expands two Color16 endpoints into the 4-entry RGB ramp.
//
// The interpolated entries use the "b-first" ordering: p2 takes 2/3 of
// endpoint b and 1/3 of endpoint a, p3 the complement. This exact
// weighting (and not the endpoint order swap some reference BC1 decoders
// use) is what reproduces this format's output bit-for-bit.
func BuildPalette(a, b Color16) Palette {
	ca, cb := a.Expand8(), b.Expand8()
	return Palette{
		0: ca,
		1: cb,
		2: lerp(cb, ca, 2, 1),
		3: lerp(cb, ca, 1, 2),
	}
}

// lerp computes the channel-wise weighted blend (wB*cb + wA*ca) / (wA+wB)
// using integer truncation: fixed-point math throughout, no floating
// point, no rounding.
func lerp(cb, ca Color, wB, wA uint32) Color {
	div := wA + wB
	return Color{
		R: uint8((uint32(cb.R)*wB + uint32(ca.R)*wA) / div),
		G: uint8((uint32(cb.G)*wB + uint32(ca.G)*wA) / div),
		B: uint8((uint32(cb.B)*wB + uint32(ca.B)*wA) / div),
	}
}

// pixelIndex extracts the 2-bit palette index for texel (row, col) from a
// big-endian 32-bit pixel table: bit position 30 - 2*(4*row+col), counted
// from the most significant bit.
func pixelIndex(table uint32, row, col int) uint32 {
	shift := uint(30 - 2*(4*row+col))
	return (table >> shift) & 0x3
}

// Decode expands an 8-byte GCT block into the 16 texels of dst, addressed
// by (row, col) with the given stride (texels per row of the destination
// window, not bytes).
func Decode(blk [8]byte, dst []Color, stride int) {
	a := Color16(uint16(blk[0])<<8 | uint16(blk[1]))
	b := Color16(uint16(blk[2])<<8 | uint16(blk[3]))
	pal := BuildPalette(a, b)

	table := uint32(blk[4])<<24 | uint32(blk[5])<<16 | uint32(blk[6])<<8 | uint32(blk[7])

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			dst[row*stride+col] = pal[pixelIndex(table, row, col)]
		}
	}
}
