// Package gct implements the GCT texture container codec: a BC1/DXT1-style
// block-compressed RGBA format with a big-endian wire layout, macro-tile
// traversal, and an alpha channel carried as a second, independently
// compressed plane via the green-channel trick.
//
// The package exposes two layers. The lower layer (InitHeader,
// EncodedSize, Encode, DecodedSize, Decode, ErrorString) mirrors the
// original C library's allocation-free entry points: callers own every
// buffer and the codec never allocates. The higher layer (EncodeImage,
// DecodeImage, and registration with the standard image package) is a
// convenience built on top for callers who just want an image.Image in
// or out.
package gct

import (
	"github.com/gctlib/go-gct/internal/alpha"
	"github.com/gctlib/go-gct/internal/block"
	"github.com/gctlib/go-gct/internal/gcterr"
	"github.com/gctlib/go-gct/internal/header"
	"github.com/gctlib/go-gct/internal/plane"
	"github.com/gctlib/go-gct/internal/tile"
)

// Color is an 8-bit-per-channel RGBA pixel, the unit pixels-in/pixels-out
// buffers are built from. It is a plain alias for the block codec's pixel
// type so conversions between this package and internal/block are free.
type Color = block.Color

// Header is the 32-octet GCT file header: duplicated width/height,
// a flags word, an orientation word, and 8 octets of padding. Build one
// with InitHeader rather than constructing it directly.
type Header struct {
	Width, Height   int32
	Width2, Height2 int32
	Flags           uint32
	Orientation     int32
	Pad             [8]byte
}

func (h Header) toInternal() header.Header {
	return header.Header{
		Width: h.Width, Height: h.Height,
		Width2: h.Width2, Height2: h.Height2,
		Flags: h.Flags, Orientation: h.Orientation, Pad: h.Pad,
	}
}

func fromInternal(h header.Header) Header {
	return Header{
		Width: h.Width, Height: h.Height,
		Width2: h.Width2, Height2: h.Height2,
		Flags: h.Flags, Orientation: h.Orientation, Pad: h.Pad,
	}
}

// HeaderSize is the fixed octet length of a marshaled Header.
const HeaderSize = header.Size

// SupportedFlags is the only flags value InitHeader accepts: FlagAlpha
// OR'd with FlagUnknown01.
const SupportedFlags = header.SupportedFlags

// Header flag bits. Only FlagUnknown01 and FlagAlpha ever appear in a
// supported header (SupportedFlags); the rest name bits a real header
// carries but this codec's closed flags set always rejects.
const (
	FlagUnknown00 = header.FlagUnknown00
	FlagUnknown01 = header.FlagUnknown01
	FlagUnknown02 = header.FlagUnknown02
	FlagAlpha     = header.FlagAlpha
	FlagUnknown04 = header.FlagUnknown04
	FlagUnknown05 = header.FlagUnknown05
	FlagUnknown06 = header.FlagUnknown06
	FlagUnknown07 = header.FlagUnknown07
	FlagUnknown08 = header.FlagUnknown08
	FlagUnknown09 = header.FlagUnknown09
	FlagUnknown10 = header.FlagUnknown10
	FlagUnknown11 = header.FlagUnknown11
	FlagUnknown12 = header.FlagUnknown12
	FlagUnknown13 = header.FlagUnknown13
	FlagUnknown14 = header.FlagUnknown14
	FlagUnknown15 = header.FlagUnknown15
	FlagUnknown16 = header.FlagUnknown16
	FlagUnknown17 = header.FlagUnknown17
	FlagUnknown18 = header.FlagUnknown18
	FlagUnknown19 = header.FlagUnknown19
	FlagUnknown20 = header.FlagUnknown20
	FlagUnknown21 = header.FlagUnknown21
	FlagUnknown22 = header.FlagUnknown22
	FlagUnknown23 = header.FlagUnknown23
	FlagUnknown24 = header.FlagUnknown24
	FlagUnknown25 = header.FlagUnknown25
	FlagUnknown26 = header.FlagUnknown26
	FlagUnknown27 = header.FlagUnknown27
	FlagUnknown28 = header.FlagUnknown28
	FlagUnknown29 = header.FlagUnknown29
	FlagUnknown30 = header.FlagUnknown30
	FlagUnknown31 = header.FlagUnknown31
)

// String renders h for logging: dimensions, flags by name, orientation.
func (h Header) String() string {
	return h.toInternal().String()
}

// GoString renders h as a Go literal, for %#v in debug output.
func (h Header) GoString() string {
	return h.toInternal().GoString()
}

// MarshalBinary encodes h as the 32-octet wire header.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, header.Size)
	header.Marshal(h.toInternal(), buf)
	return buf, nil
}

// UnmarshalBinary decodes the 32-octet wire header from data[:HeaderSize]
// into h, without validating it; use Validate to check the result.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < header.Size {
		return ErrInvalidImage
	}
	*h = fromInternal(header.Parse(data))
	return nil
}

// Validate checks h's invariants (size, flags, orientation) the way a
// freshly parsed wire header is checked, and reports the first violation
// found.
func (h Header) Validate() Error {
	return asError(header.Validate(h.toInternal()))
}

// InitHeader validates width, height, and flags and fills hdr with the
// corresponding header fields. It returns Success, or ErrInvalidSize /
// ErrUnsupportedFlags without modifying hdr.
func InitHeader(hdr *Header, width, height int, flags uint32) Error {
	var ih header.Header
	if k := header.Init(&ih, width, height, flags); k != gcterr.Success {
		return asError(k)
	}
	*hdr = fromInternal(ih)
	return Success
}

// EncodedSize returns the payload size in octets (not including the
// header) that Encode requires bytesOut to be, for a header built with
// InitHeader. A negative return is a negated Error.
func EncodedSize(hdr Header) int64 {
	return header.EncodedSize(hdr.toInternal())
}

// DecodedSize parses a raw file buffer's header (file[:HeaderSize]) and
// returns the pixel buffer size, in Color units, that Decode requires
// pixelsOut to be. A negative return is a negated Error.
func DecodedSize(file []byte) int64 {
	n := header.DecodedSize(file)
	if n < 0 {
		return n
	}
	return n / 4
}

// Encode compresses pixelsIn (width*height Color values, row-major) into
// bytesOut per hdr, which must already be valid (built with InitHeader).
// bytesOut must be exactly EncodedSize(hdr) long; it holds only the color
// and alpha block planes, not the header — callers that need a complete
// file concatenate a marshaled Header themselves (see EncodeImage).
func Encode(hdr Header, pixelsIn []Color, bytesOut []byte) Error {
	if pixelsIn == nil || bytesOut == nil {
		return ErrNullPointer
	}
	ih := hdr.toInternal()
	if k := header.Validate(ih); k != gcterr.Success {
		return asError(k)
	}
	width, height := int(ih.Width), int(ih.Height)
	if len(pixelsIn) < width*height {
		return ErrNullPointer
	}
	planeSize := plane.Size(width, height)
	if len(bytesOut) != 2*planeSize {
		return ErrInvalidSize
	}
	colorPlane, alphaPlane := plane.Split(bytesOut, planeSize)

	blockIdx := 0
	var tileBuf [16]Color
	tile.Walk(width, height, func(x, y int) {
		for r := 0; r < 4; r++ {
			row := (y + r) * width
			copy(tileBuf[r*4:r*4+4], pixelsIn[row+x:row+x+4])
		}

		cb := block.Encode(tileBuf)
		copy(colorPlane[blockIdx*8:blockIdx*8+8], cb[:])

		ab := alpha.Encode(tileBuf)
		copy(alphaPlane[blockIdx*8:blockIdx*8+8], ab[:])

		blockIdx++
	})
	return Success
}

// Decode parses and decompresses file (a complete header-plus-payload
// buffer) into pixelsOut, row-major, and returns the image's dimensions.
// pixelsOut must be at least DecodedSize(file) long. On any error the
// returned width and height are 0 and pixelsOut is left untouched.
func Decode(file []byte, pixelsOut []Color) (width, height int, err Error) {
	if file == nil || pixelsOut == nil {
		return 0, 0, ErrNullPointer
	}
	if len(file) < header.Size {
		return 0, 0, ErrInvalidImage
	}
	ih := header.Parse(file)
	if k := header.Validate(ih); k != gcterr.Success {
		return 0, 0, asError(k)
	}
	width, height = int(ih.Width), int(ih.Height)
	if len(pixelsOut) < width*height {
		return 0, 0, ErrNullPointer
	}

	planeSize := plane.Size(width, height)
	payload := file[header.Size:]
	if len(payload) < 2*planeSize {
		return 0, 0, ErrInvalidImage
	}
	colorPlane, alphaPlane := plane.Split(payload, planeSize)

	blockIdx := 0
	var colorTile [16]Color
	tile.Walk(width, height, func(x, y int) {
		var cb [8]byte
		copy(cb[:], colorPlane[blockIdx*8:blockIdx*8+8])
		block.Decode(cb, colorTile[:], 4)

		var ab [8]byte
		copy(ab[:], alphaPlane[blockIdx*8:blockIdx*8+8])
		alphas := alpha.Recover(ab)

		for r := 0; r < 4; r++ {
			row := (y + r) * width
			for c := 0; c < 4; c++ {
				px := colorTile[r*4+c]
				px.A = alphas[r*4+c]
				pixelsOut[row+x+c] = px
			}
		}
		blockIdx++
	})
	return width, height, Success
}
