package gct_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/gctlib/go-gct"
)

func ExampleEncodeImage() {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 0, B: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := gct.EncodeImage(&buf, img); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("encoded %d bytes\n", buf.Len())
	// Output:
	// encoded 288 bytes
}

func ExampleDecodeImage() {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0, G: 255, B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := gct.EncodeImage(&buf, img); err != nil {
		fmt.Println(err)
		return
	}

	decoded, err := gct.DecodeImage(&buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	r, g, b, a := decoded.At(0, 0).RGBA()
	fmt.Printf("R=%d G=%d B=%d A=%d\n", r>>8, g>>8, b>>8, a>>8)
	// Output:
	// R=0 G=255 B=0 A=255
}

func ExampleInitHeader() {
	var hdr gct.Header
	err := gct.InitHeader(&hdr, 32, 16, gct.SupportedFlags)
	fmt.Println(err, hdr.Width, hdr.Height)
	// Output:
	// gct: success 32 16
}
