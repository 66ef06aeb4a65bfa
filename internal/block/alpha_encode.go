package block

// EncodeAlpha compresses 16 green-channel-only texels (as produced by
// alpha.ToGreenTile) into an 8-byte GCT block. Unlike Encode, it fits
// indices against the "a-first" alpha ramp (BuildAlphaPalette) rather
// than the "b-first" RGB ramp, since that is the ramp DecodeAlphaPlane
// will use to recover the values: fitting against the wrong ramp would
// still produce a block that decodes, just not to the nearest values.
//
// The search is one-dimensional (only green varies), so it needs none of
// Encode's principal-axis machinery: the two endpoints are simply the
// extreme green values present in the tile.
func EncodeAlpha(greenOnly [16]Color) [8]byte {
	lo, hi := uint8(255), uint8(0)
	for _, t := range greenOnly {
		if t.G < lo {
			lo = t.G
		}
		if t.G > hi {
			hi = t.G
		}
	}

	a16 := PackColor16(0, lo, 0)
	b16 := PackColor16(0, hi, 0)
	pal := BuildAlphaPalette(a16, b16)

	nat := naturalBlock{a: a16, b: b16}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			idx := bestAlphaIndex(pal, greenOnly[r*4+c].G)
			nat.table |= uint32(idx) << uint(8*r+2*c)
		}
	}
	return nat.toGCT()
}

// bestAlphaIndex picks the alpha-ramp entry nearest g, ties broken toward
// the lower index.
func bestAlphaIndex(pal AlphaPalette, g uint8) int {
	best, bestDist := 0, 1<<30
	for i, p := range pal {
		d := int(g) - int(p)
		dist := d * d
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}
