package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// GridRows and GridCols define the fixed grid used by SplitUniform.
const (
	GridRows = 3
	GridCols = 3
)

// ErrInvalidTileSize is returned by SplitBySize when a requested tile
// dimension is below one pixel.
var ErrInvalidTileSize = errors.New("tile dimensions must be at least 1 pixel")

// Tile is one rectangular sub-image cut out of a source image.
//
// Row and Col are the tile's position in the split grid, X and Y the
// top-left corner of the region it was cut from, in source pixels.
// Image is a freshly allocated RGBA buffer that shares no memory with the
// source image or with any other tile.
type Tile struct {
	Row   int
	Col   int
	X     int
	Y     int
	Image *image.NRGBA
}

// Width returns the tile width in pixels.
func (t Tile) Width() int { return t.Image.Bounds().Dx() }

// Height returns the tile height in pixels.
func (t Tile) Height() int { return t.Image.Bounds().Dy() }

// SplitUniform divides an image into a fixed 3x3 grid of equal-sized tiles.
//
// Tile dimensions are floor(width/3) x floor(height/3). When a dimension is
// not a multiple of 3, the leftover pixel rows/columns on the bottom/right
// edge belong to no tile; the remainder is discarded, not folded into the
// edge tiles. The result always holds exactly 9 tiles in row-major order.
// Images narrower or shorter than 3 pixels produce zero-area tiles, which is
// accepted behavior rather than an error.
func SplitUniform(img image.Image) []Tile {
	bounds := img.Bounds()
	subWidth := bounds.Dx() / GridCols
	subHeight := bounds.Dy() / GridRows

	tiles := make([]Tile, 0, GridRows*GridCols)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			x := col * subWidth
			y := row * subHeight
			tiles = append(tiles, Tile{
				Row:   row,
				Col:   col,
				X:     x,
				Y:     y,
				Image: extractRegion(img, x, y, subWidth, subHeight),
			})
		}
	}
	return tiles
}

// SplitBySize divides an image into tiles of the requested size.
//
// Row and column counts come from integer ceiling division, and tiles in the
// last row/column are clamped to the pixels that remain, so the output
// covers every source pixel exactly once with no overlap. Tiles are emitted
// in row-major order: tile i sits at grid position (i/cols, i%cols).
//
// Returns ErrInvalidTileSize when either tile dimension is below 1.
func SplitBySize(img image.Image, tileWidth, tileHeight int) ([]Tile, error) {
	if tileWidth < 1 || tileHeight < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidTileSize, tileWidth, tileHeight)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	numCols := (width + tileWidth - 1) / tileWidth
	numRows := (height + tileHeight - 1) / tileHeight

	tiles := make([]Tile, 0, numRows*numCols)
	for row := 0; row < numRows; row++ {
		for col := 0; col < numCols; col++ {
			x := col * tileWidth
			y := row * tileHeight
			actualWidth := min(tileWidth, width-x)
			actualHeight := min(tileHeight, height-y)
			tiles = append(tiles, Tile{
				Row:   row,
				Col:   col,
				X:     x,
				Y:     y,
				Image: extractRegion(img, x, y, actualWidth, actualHeight),
			})
		}
	}
	return tiles, nil
}

// extractRegion copies one rectangular region of img into an owned RGBA
// buffer. Both splitters construct coordinates that stay within the image
// bounds, so extraction itself cannot fail.
func extractRegion(img image.Image, x, y, w, h int) *image.NRGBA {
	return imaging.Crop(img, image.Rect(x, y, x+w, y+h))
}
