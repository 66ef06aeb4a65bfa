// Package gct provides a pure Go encoder and decoder for the GCT texture
// container format.
//
// GCT is a block-compressed RGBA texture format built on a BC1/DXT1-style
// 4x4 block codec, walked in 8x8 macro tiles, with the alpha channel
// carried as an independently compressed second plane via a
// green-channel substitution trick. This package implements the format
// without any CGo dependencies, making it fully portable and easy to
// cross-compile.
//
// The package supports:
//   - Block-compressed RGB color plane
//   - Block-compressed alpha plane (green-channel trick)
//   - Big-endian, MSB-first wire layout
//   - Macro-tile traversal (8x8 super-tiles of four 4x4 sub-tiles)
//
// Basic usage for decoding:
//
//	img, err := gct.DecodeImage(reader)
//
// Basic usage for encoding:
//
//	err := gct.EncodeImage(writer, img)
package gct
