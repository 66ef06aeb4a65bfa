package block

// flipByte reverses the four 2-bit groups within an octet: an octet
// b7 b6 b5 b4 b3 b2 b1 b0 becomes b1 b0 b3 b2 b5 b4 b7 b6. Applied to each
// of a block's four pixel-table bytes, this converts a conventional
// LSB-first BC1/DXT1 bitstream (as most reference compressors emit) into
// GCT's MSB-first layout.
func flipByte(c byte) byte {
	return c<<6 | (c<<2)&0x30 | (c>>2)&0x0c | c>>6
}

// naturalBlock is a block in the conventional little-endian BC1/DXT1
// layout: both endpoints little-endian, pixel table packed LSB-first
// (texel i occupies bits [2i:2i+1] of the little-endian 32-bit table,
// byte-by-byte).
type naturalBlock struct {
	a, b  Color16
	table uint32 // texel i at bits [2i:2i+1], LSB-first
}

// toGCT converts a naturalBlock to the big-endian, MSB-first 8-byte GCT
// wire format: swap each endpoint's two octets, and reverse the 2-bit
// groups within each of the four pixel-table octets. Byte order across
// the four table octets is unchanged — only the bit groups inside each
// octet are reordered, matching the original SwapDXT/FlipByte adapter
// this format was built around.
func (n naturalBlock) toGCT() [8]byte {
	var out [8]byte

	out[0] = byte(n.a >> 8)
	out[1] = byte(n.a)
	out[2] = byte(n.b >> 8)
	out[3] = byte(n.b)

	out[4] = flipByte(byte(n.table))
	out[5] = flipByte(byte(n.table >> 8))
	out[6] = flipByte(byte(n.table >> 16))
	out[7] = flipByte(byte(n.table >> 24))

	return out
}
