// Package endian reads and writes the big-endian fixed-width fields GCT
// uses throughout its header and block encoding, and reinterprets raw
// 32-bit words as two's-complement signed values for the size checks in
// the header codec.
package endian

import "encoding/binary"

// Uint16 reads a big-endian uint16 at offset off in b.
func Uint16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off:])
}

// PutUint16 writes v as a big-endian uint16 at offset off in b.
func PutUint16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:], v)
}

// Uint32 reads a big-endian uint32 at offset off in b.
func Uint32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}

// PutUint32 writes v as a big-endian uint32 at offset off in b.
func PutUint32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

// Signed32 reinterprets a raw 32-bit word as a two's-complement signed
// value, the way the header codec treats width/height/orientation fields
// when rejecting negative sizes.
func Signed32(v uint32) int32 {
	return int32(v)
}
