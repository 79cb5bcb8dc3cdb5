package imaging

import (
	"github.com/lucasb-eyer/go-colorful"
)

// TileColor summarizes a tile's mean color in RGB, hex, and HSL.
//
// Hue is in degrees (0-360), Saturation and Lightness are percentages
// (0-100). The summary is informational; tile pixel data is never
// converted or modified.
type TileColor struct {
	Hex        string  `json:"hex"`
	R          uint8   `json:"r"`
	G          uint8   `json:"g"`
	B          uint8   `json:"b"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// AverageColor computes the mean color over all pixels of a tile.
// Returns nil for zero-area tiles.
func AverageColor(t Tile) *TileColor {
	bounds := t.Image.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	var sumR, sumG, sumB uint64
	for y := 0; y < h; y++ {
		row := t.Image.Pix[y*t.Image.Stride : y*t.Image.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			sumR += uint64(row[x])
			sumG += uint64(row[x+1])
			sumB += uint64(row[x+2])
		}
	}

	n := uint64(w * h)
	r := uint8(sumR / n)
	g := uint8(sumG / n)
	b := uint8(sumB / n)

	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	hue, sat, light := c.Hsl()

	return &TileColor{
		Hex:        c.Hex(),
		R:          r,
		G:          g,
		B:          b,
		Hue:        hue,
		Saturation: sat * 100,
		Lightness:  light * 100,
	}
}
