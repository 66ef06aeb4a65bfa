// Package tile implements GCT's macro-tile traversal: the image's 4x4
// block grid is walked as 8x8 super-tiles, scanned row by row, and each
// super-tile's four 4x4 sub-tiles are visited in a fixed order. Both the
// color plane and the alpha plane are walked with this same order, so a
// single definition here backs both planes.
package tile

// Offset is one sub-tile's pixel-space origin within its super-tile.
type Offset struct{ X, Y int }

// SubtileOrder is the fixed visiting order within an 8x8 super-tile:
// top-left, top-right, bottom-left, bottom-right.
var SubtileOrder = [4]Offset{
	{X: 0, Y: 0},
	{X: 4, Y: 0},
	{X: 0, Y: 4},
	{X: 4, Y: 4},
}

// Walk calls yield once per 4x4 sub-tile of a width x height image, in
// on-disk block order: super-tiles scanned row-major, sub-tiles within
// each super-tile in SubtileOrder. width and height must be positive
// multiples of 8 (the caller validates this; Walk itself does not).
func Walk(width, height int, yield func(x, y int)) {
	for sy := 0; sy < height; sy += 8 {
		for sx := 0; sx < width; sx += 8 {
			for _, off := range SubtileOrder {
				yield(sx+off.X, sy+off.Y)
			}
		}
	}
}

// Count returns the number of 4x4 sub-tiles (= blocks) a width x height
// image decomposes into.
func Count(width, height int) int {
	return (width / 4) * (height / 4)
}
