// Package header implements the GCT file header codec: a fixed
// 32-octet, big-endian structure validated and emitted ahead of the
// color and alpha block planes.
//
// Adapted from the container header parser this codec's header format
// was distilled from: the same "named flags plus a debug String()"
// presentation convention is kept, but the chunked, variable-length
// parsing of that richer container is replaced with GCT's fixed-layout,
// fixed-size header.
package header

import (
	"fmt"
	"strings"

	"github.com/gctlib/go-gct/internal/endian"
	"github.com/gctlib/go-gct/internal/gcterr"
)

// Size is the fixed length, in octets, of a GCT header.
const Size = 32

// Header flag bits. Each names one bit of the 32-bit flags word; most
// are carried over from the format this codec was distilled from without
// any documented meaning beyond their bit position. Naming the full set,
// not just SupportedFlags, lets a reader see exactly which bits the
// closed set excludes instead of just that it excludes "anything but
// 0xa".
const (
	FlagUnknown00 uint32 = 1 << iota
	FlagUnknown01
	FlagUnknown02
	FlagAlpha
	FlagUnknown04
	FlagUnknown05
	FlagUnknown06
	FlagUnknown07
	FlagUnknown08
	FlagUnknown09
	FlagUnknown10
	FlagUnknown11
	FlagUnknown12
	FlagUnknown13
	FlagUnknown14
	FlagUnknown15
	FlagUnknown16
	FlagUnknown17
	FlagUnknown18
	FlagUnknown19
	FlagUnknown20
	FlagUnknown21
	FlagUnknown22
	FlagUnknown23
	FlagUnknown24
	FlagUnknown25
	FlagUnknown26
	FlagUnknown27
	FlagUnknown28
	FlagUnknown29
	FlagUnknown30
	FlagUnknown31
)

var flagNames = [32]string{
	0: "unknown0", 1: "unknown1", 2: "unknown2", 3: "alpha",
	4: "unknown4", 5: "unknown5", 6: "unknown6", 7: "unknown7",
	8: "unknown8", 9: "unknown9", 10: "unknown10", 11: "unknown11",
	12: "unknown12", 13: "unknown13", 14: "unknown14", 15: "unknown15",
	16: "unknown16", 17: "unknown17", 18: "unknown18", 19: "unknown19",
	20: "unknown20", 21: "unknown21", 22: "unknown22", 23: "unknown23",
	24: "unknown24", 25: "unknown25", 26: "unknown26", 27: "unknown27",
	28: "unknown28", 29: "unknown29", 30: "unknown30", 31: "unknown31",
}

// flagBits lists the set bits of flags by name, low bit first.
func flagBits(flags uint32) []string {
	var names []string
	for i := 0; i < 32; i++ {
		if flags&(1<<uint(i)) != 0 {
			names = append(names, flagNames[i])
		}
	}
	return names
}

// SupportedFlags is the only flags value the header codec accepts:
// FlagUnknown01 OR'd with FlagAlpha. Every other bit combination,
// including the many flag bits named above but never documented, is
// rejected.
const SupportedFlags uint32 = FlagUnknown01 | FlagAlpha

// OrientationUpright is the only supported orientation value. The
// header format also reserves -1 for "vertically flipped", but no GCT
// producer or consumer in this codec's supported subset emits or
// accepts it.
const OrientationUpright int32 = 0

// Header is the 32-octet GCT file header.
type Header struct {
	Width, Height   int32
	Width2, Height2 int32
	Flags           uint32
	Orientation     int32
	// Pad is the 8 octets of padding at offsets 0x18-0x1F: zero on
	// emit, ignored on parse.
	Pad [8]byte
}

// ValidSize reports whether width and height are positive multiples of
// 8, the smallest super-tile GCT's macro-tile traversal can walk.
func ValidSize(width, height int32) bool {
	return width > 0 && height > 0 && width%8 == 0 && height%8 == 0
}

// SupportedFlagsValue reports whether flags is the one accepted flags
// combination.
func SupportedFlagsValue(flags uint32) bool {
	return flags == SupportedFlags
}

// Init validates width, height, and flags and fills hdr with the
// corresponding header fields: width/height duplicated, orientation
// upright, padding zeroed. It never touches hdr before every validation
// passes.
func Init(hdr *Header, width, height int, flags uint32) gcterr.Kind {
	w, h := int32(width), int32(height)
	if !ValidSize(w, h) {
		return gcterr.InvalidSize
	}
	if !SupportedFlagsValue(flags) {
		return gcterr.UnsupportedFlags
	}

	hdr.Width, hdr.Height = w, h
	hdr.Width2, hdr.Height2 = w, h
	hdr.Flags = flags
	hdr.Orientation = OrientationUpright
	hdr.Pad = [8]byte{}
	return gcterr.Success
}

// validate re-checks an already-populated header's invariants, as used
// by both EncodedSize (an in-memory header) and DecodedSize/Decode (a
// header just parsed off the wire). sizeErr is the kind to return for a
// size mismatch (InvalidSize in-memory, InvalidImage on the wire);
// flagsErr is likewise UnsupportedFlags in-memory and UnsupportedImage on
// the wire. validate does not look at orientation: DecodedSize and
// Validate check it themselves, since it is only ever a parsed-file
// concern.
func validate(hdr Header, sizeErr, flagsErr gcterr.Kind) gcterr.Kind {
	if hdr.Width != hdr.Width2 || hdr.Height != hdr.Height2 || !ValidSize(hdr.Width, hdr.Height) {
		return sizeErr
	}
	if !SupportedFlagsValue(hdr.Flags) {
		return flagsErr
	}
	return gcterr.Success
}

// EncodedSize returns the encoded payload size in octets (width*height,
// 4 bits per pixel across two planes) for an in-memory header that was
// built with Init, or a negated gcterr.Kind on failure.
func EncodedSize(hdr Header) int64 {
	if k := validate(hdr, gcterr.InvalidSize, gcterr.UnsupportedFlags); k != gcterr.Success {
		return k.Negate()
	}
	return int64(hdr.Width) * int64(hdr.Height)
}

// DecodedSize parses a raw file buffer's header and returns the decoded
// pixel buffer size in octets (width*height*4, one Color8 per texel), or
// a negated gcterr.Kind on failure.
func DecodedSize(file []byte) int64 {
	if len(file) < Size {
		return gcterr.InvalidImage.Negate()
	}
	hdr := Parse(file)
	if k := validate(hdr, gcterr.InvalidImage, gcterr.UnsupportedImage); k != gcterr.Success {
		return k.Negate()
	}
	if hdr.Orientation != OrientationUpright {
		return gcterr.UnsupportedImage.Negate()
	}
	return int64(hdr.Width) * int64(hdr.Height) * 4
}

// Validate fully validates a parsed wire header (size, flags,
// orientation) and returns gcterr.Success or the matching wire-parse
// error kind.
func Validate(hdr Header) gcterr.Kind {
	if k := validate(hdr, gcterr.InvalidImage, gcterr.UnsupportedImage); k != gcterr.Success {
		return k
	}
	if hdr.Orientation != OrientationUpright {
		return gcterr.UnsupportedImage
	}
	return gcterr.Success
}

// Parse reads the 32-octet header from the start of file. The caller
// must ensure len(file) >= Size.
func Parse(file []byte) Header {
	return Header{
		Width:       int32(endian.Uint32(file, 0x00)),
		Height:      int32(endian.Uint32(file, 0x04)),
		Width2:      int32(endian.Uint32(file, 0x08)),
		Height2:     int32(endian.Uint32(file, 0x0C)),
		Flags:       endian.Uint32(file, 0x10),
		Orientation: int32(endian.Uint32(file, 0x14)),
	}
}

// Marshal writes hdr as the 32-octet wire header into dst[:Size].
func Marshal(hdr Header, dst []byte) {
	endian.PutUint32(dst, 0x00, uint32(hdr.Width))
	endian.PutUint32(dst, 0x04, uint32(hdr.Height))
	endian.PutUint32(dst, 0x08, uint32(hdr.Width2))
	endian.PutUint32(dst, 0x0C, uint32(hdr.Height2))
	endian.PutUint32(dst, 0x10, hdr.Flags)
	endian.PutUint32(dst, 0x14, uint32(hdr.Orientation))
	for i := 0x18; i < Size; i++ {
		dst[i] = 0
	}
}

// String renders a parsed header for logging: dimensions, flags by name
// rather than raw hex, and orientation.
func (hdr Header) String() string {
	bits := flagBits(hdr.Flags)
	names := "none"
	if len(bits) > 0 {
		names = strings.Join(bits, "|")
	}
	return fmt.Sprintf("header{%dx%d flags=%#x(%s) orientation=%d}",
		hdr.Width, hdr.Height, hdr.Flags, names, hdr.Orientation)
}

// GoString renders hdr as a Go literal, for %#v in debug output.
func (hdr Header) GoString() string {
	return fmt.Sprintf("header.Header{Width:%d, Height:%d, Width2:%d, Height2:%d, Flags:%#x, Orientation:%d}",
		hdr.Width, hdr.Height, hdr.Width2, hdr.Height2, hdr.Flags, hdr.Orientation)
}
