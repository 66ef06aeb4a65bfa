// Package alpha implements GCT's alpha-channel trick: the alpha byte of
// each texel is presented to the block codec as the green channel of a
// synthetic RGBA tile whose r, b, and a channels are zero, reusing the
// block format's 6 bits of green precision. The alpha plane is carried
// as a second, independently compressed block stream rather than folded
// into the color plane's own bits.
package alpha

import "github.com/gctlib/go-gct/internal/block"

// ToGreenTile builds the synthetic RGBA tile the block codec compresses
// in place of the real RGB data: every texel's alpha value becomes the
// green channel, with red, blue, and alpha all zeroed.
func ToGreenTile(src [16]block.Color) [16]block.Color {
	var tile [16]block.Color
	for i, c := range src {
		tile[i] = block.Color{G: c.A}
	}
	return tile
}

// Recover extracts the 16 alpha values from an alpha-plane block using
// the "a-first" palette ramp (block.BuildAlphaPalette), which differs
// from the ordinary RGB ramp's "b-first" weighting.
func Recover(blk [8]byte) [16]uint8 {
	var out [16]uint8
	block.DecodeAlphaPlane(blk, out[:], 4)
	return out
}

// Encode compresses 16 source texels' alpha channel into an 8-byte
// alpha-plane block, via the green-channel trick.
func Encode(src [16]block.Color) [8]byte {
	return block.EncodeAlpha(ToGreenTile(src))
}
