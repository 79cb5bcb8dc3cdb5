package imaging

import (
	"image/color"
	"math"
	"testing"
)

func TestAverageColor_SolidRed(t *testing.T) {
	img := createInMemoryImage(9, 9, color.RGBA{255, 0, 0, 255})
	tiles := SplitUniform(img)

	c := AverageColor(tiles[0])
	if c == nil {
		t.Fatal("AverageColor returned nil for a non-empty tile")
	}

	if c.Hex != "#ff0000" {
		t.Errorf("Hex: got %s, want #ff0000", c.Hex)
	}
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,0,0)", c.R, c.G, c.B)
	}
	if c.Hue != 0 {
		t.Errorf("Hue: got %f, want 0", c.Hue)
	}
	if math.Abs(c.Saturation-100) > 0.01 {
		t.Errorf("Saturation: got %f, want 100", c.Saturation)
	}
	if math.Abs(c.Lightness-50) > 0.01 {
		t.Errorf("Lightness: got %f, want 50", c.Lightness)
	}
}

func TestAverageColor_MixedTile(t *testing.T) {
	// Pattern quadrants: the whole 10x10 image as a single tile averages
	// red, green, blue, and white in equal parts.
	img := createPatternImage(10, 10)
	tiles, err := SplitBySize(img, 10, 10)
	if err != nil {
		t.Fatalf("SplitBySize failed: %v", err)
	}

	c := AverageColor(tiles[0])
	if c == nil {
		t.Fatal("AverageColor returned nil")
	}

	// Each channel is at 255 in exactly half of the pixels.
	want := uint8(127)
	if c.R != want || c.G != want || c.B != want {
		t.Errorf("RGB: got (%d,%d,%d), want (%d,%d,%d)", c.R, c.G, c.B, want, want, want)
	}
	if c.Hex != "#7f7f7f" {
		t.Errorf("Hex: got %s, want #7f7f7f", c.Hex)
	}
	if math.Abs(c.Saturation) > 0.01 {
		t.Errorf("Saturation: got %f, want 0 for grey", c.Saturation)
	}
}

func TestAverageColor_ZeroAreaTile(t *testing.T) {
	img := createInMemoryImage(2, 2, color.RGBA{255, 0, 0, 255})
	tiles := SplitUniform(img)

	if c := AverageColor(tiles[0]); c != nil {
		t.Errorf("AverageColor for zero-area tile: got %+v, want nil", c)
	}
}
