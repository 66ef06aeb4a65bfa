// Command gctdec decodes GCT files to PNG, BMP, or TIFF.
//
// Usage:
//
//	gctdec [options] <input.gct>
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gctlib/go-gct"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	output := flag.String("o", "", `output path (default: <input> with the output format's extension, "-" for stdout)`)
	outFmt := flag.String("fmt", "", "output format: png, bmp, tiff (auto-detected from -o extension if omitted)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gctdec [options] <input.gct>")
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	if err := run(inputPath, *output, *outFmt); err != nil {
		log.Error("decode failed", "input", inputPath, "err", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath, outFmt string) error {
	in, err := openInput(inputPath)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer in.Close()

	img, err := gct.DecodeImage(in)
	if err != nil {
		return errors.Wrap(err, "decoding")
	}

	format := detectFormat(outFmt, outputPath)
	out, outputPath, err := openOutput(inputPath, outputPath, format)
	if err != nil {
		return errors.Wrap(err, "opening output")
	}

	if err := encodeImage(out, img, format); err != nil {
		closeAndRemove(out, outputPath)
		return errors.Wrap(err, "encoding output")
	}
	if err := closeOutput(out, outputPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Decoded %s -> %s\n", inputPath, outputPath)
	return nil
}

func detectFormat(fmtFlag, outputPath string) string {
	if fmtFlag != "" {
		return strings.ToLower(fmtFlag)
	}
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "png"
}

func encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(inputPath, outputPath, format string) (io.WriteCloser, string, error) {
	if outputPath == "-" {
		return nopWriteCloser{os.Stdout}, "-", nil
	}
	if outputPath == "" {
		ext := "." + format
		if format == "" {
			ext = ".png"
		}
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = base + ext
	}
	f, err := os.Create(outputPath)
	return f, outputPath, err
}

func closeOutput(w io.WriteCloser, path string) error {
	if path == "-" {
		return nil
	}
	return w.Close()
}

func closeAndRemove(w io.WriteCloser, path string) {
	if path == "-" {
		return
	}
	w.Close()
	os.Remove(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
