// Command gctenc encodes PNG, BMP, or TIFF images to GCT.
//
// Usage:
//
//	gctenc [options] <input>
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/gctlib/go-gct"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	output := flag.String("o", "", `output path (default: <input>.gct, "-" for stdout)`)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gctenc [options] <input>")
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	if err := run(inputPath, *output); err != nil {
		log.Error("encode failed", "input", inputPath, "err", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	in, err := openInput(inputPath)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return errors.Wrap(err, "decoding input")
	}
	slog.Debug("decoded input", "format", format, "bounds", img.Bounds())

	out, outputPath, err := openOutput(inputPath, outputPath)
	if err != nil {
		return errors.Wrap(err, "opening output")
	}

	if err := gct.EncodeImage(out, img); err != nil {
		closeAndRemove(out, outputPath)
		return errors.Wrap(err, "encoding")
	}
	if err := closeOutput(out, outputPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Encoded %s -> %s\n", inputPath, outputPath)
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(inputPath, outputPath string) (io.WriteCloser, string, error) {
	if outputPath == "-" {
		return nopWriteCloser{os.Stdout}, "-", nil
	}
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = base + ".gct"
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
