package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/webp"
)

// webpQuality is the lossy quality used when tiles are encoded as WebP.
const webpQuality = 85

// TileData is the wire form of a single tile: its grid position and
// geometry plus the encoded pixel payload.
type TileData struct {
	Row          int        `json:"row"`
	Col          int        `json:"col"`
	X            int        `json:"x"`
	Y            int        `json:"y"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	ImageBase64  string     `json:"image_base64,omitempty"`
	MimeType     string     `json:"mime_type,omitempty"`
	AverageColor *TileColor `json:"average_color,omitempty"`
}

// EncodeTile encodes a tile's pixels in the given format and returns it
// with a base64 payload. Supported formats are "png" (the default when
// format is empty) and "webp". Zero-area tiles come back with geometry
// only and no payload.
func EncodeTile(t Tile, format string) (*TileData, error) {
	data := &TileData{
		Row:    t.Row,
		Col:    t.Col,
		X:      t.X,
		Y:      t.Y,
		Width:  t.Width(),
		Height: t.Height(),
	}
	if data.Width == 0 || data.Height == 0 {
		return data, nil
	}

	raw, mimeType, err := EncodeTileBytes(t, format)
	if err != nil {
		return nil, err
	}
	data.ImageBase64 = base64.StdEncoding.EncodeToString(raw)
	data.MimeType = mimeType
	return data, nil
}

// EncodeTileBytes encodes a tile's pixels and returns the raw bytes along
// with their MIME type.
func EncodeTileBytes(t Tile, format string) ([]byte, string, error) {
	return encodeImage(t.Image, format)
}

func encodeImage(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "", "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode tile as PNG: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	case "webp":
		opts := webp.Options{
			Lossless: false,
			Quality:  webpQuality,
		}
		if err := webp.Encode(&buf, img, opts); err != nil {
			return nil, "", fmt.Errorf("failed to encode tile as WebP: %w", err)
		}
		return buf.Bytes(), "image/webp", nil
	default:
		return nil, "", fmt.Errorf("unsupported tile format: %q", format)
	}
}

// formatExtension maps a tile format to its file extension.
func formatExtension(format string) (string, error) {
	switch format {
	case "", "png":
		return ".png", nil
	case "webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("unsupported tile format: %q", format)
	}
}

// SaveTiles writes tiles as numbered files (tile_000.png, tile_001.png, ...)
// under dir, creating the directory if needed. Numbering follows slice
// order, so for a full row-major split the file number maps back to grid
// position (i/cols, i%cols). Zero-area tiles produce no file but still
// consume their number, keeping that mapping intact.
//
// Returns the written file names, in order.
func SaveTiles(tiles []Tile, dir, format string) ([]string, error) {
	ext, err := formatExtension(format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	names := make([]string, 0, len(tiles))
	for i, t := range tiles {
		if t.Width() == 0 || t.Height() == 0 {
			continue
		}
		raw, _, err := encodeImage(t.Image, format)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("tile_%03d%s", i, ext)
		if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write tile file: %w", err)
		}
		names = append(names, name)
	}
	return names, nil
}
