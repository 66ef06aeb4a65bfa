package gct

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	// GCT carries no magic signature of its own; the header's 8 trailing
	// padding octets are always zero on output, so sniffing on those
	// gives image.RegisterFormat something to match against instead of
	// accepting any 32-byte prefix unconditionally.
	const magic = "????????????????????????\x00\x00\x00\x00\x00\x00\x00\x00"
	image.RegisterFormat("gct", magic, decodeReader, DecodeConfig)
}

// readAll reads all of r, using a single exact-sized allocation when r
// reports its own length (e.g. *bytes.Reader) instead of io.ReadAll's
// repeated doublings.
func readAll(r io.Reader) ([]byte, error) {
	if lr, ok := r.(interface{ Len() int }); ok {
		if n := lr.Len(); n > 0 {
			data := make([]byte, n)
			_, err := io.ReadFull(r, data)
			return data, err
		}
	}
	return io.ReadAll(r)
}

// decodeReader adapts DecodeImage to the signature image.RegisterFormat
// requires.
func decodeReader(r io.Reader) (image.Image, error) {
	return DecodeImage(r)
}

// DecodeConfig returns a GCT image's color model and dimensions without
// decoding any pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := readAll(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("gct: reading data: %w", err)
	}
	n := DecodedSize(data)
	if n < 0 {
		return image.Config{}, Error(-n)
	}
	var hdr Header
	if err := hdr.UnmarshalBinary(data); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(hdr.Width),
		Height:     int(hdr.Height),
	}, nil
}

// DecodeImage reads a complete GCT file from r and returns it as an
// *image.NRGBA.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("gct: reading data: %w", err)
	}

	n := DecodedSize(data)
	if n < 0 {
		return nil, Error(-n)
	}
	pixels := make([]Color, n)
	width, height, decErr := Decode(data, pixels)
	if decErr != Success {
		return nil, decErr
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcRow := pixels[y*width : (y+1)*width]
		dstRow := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x, px := range srcRow {
			dstRow[x*4+0] = px.R
			dstRow[x*4+1] = px.G
			dstRow[x*4+2] = px.B
			dstRow[x*4+3] = px.A
		}
	}
	return img, nil
}

// EncodeImage compresses img as a complete GCT file (header and both
// block planes) and writes it to w. img's bounds must be a positive
// multiple of 8 in both dimensions. SupportedFlags is the only flags
// value a GCT header accepts, so the alpha plane is always produced —
// there is no cheaper all-opaque representation to fall back to.
func EncodeImage(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	var hdr Header
	if err := InitHeader(&hdr, width, height, SupportedFlags); err != Success {
		return err
	}

	pixels := make([]Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// NRGBAModel.Convert gives straight (non-premultiplied)
			// channels directly; color.Color.RGBA() alone would return
			// alpha-premultiplied values, which is the wrong space for a
			// Color8's independently stored alpha.
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pixels[y*width+x] = Color{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}

	payload := make([]byte, EncodedSize(hdr))
	if err := Encode(hdr, pixels, payload); err != Success {
		return err
	}

	headerBytes, _ := hdr.MarshalBinary()
	if _, err := w.Write(headerBytes); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
