// Package imaging decomposes decoded images into grids of sub-images.
//
// Two splitters operate over any standard image.Image:
//
//   - SplitUniform cuts a fixed 3x3 grid of equal tiles, flooring the tile
//     size and discarding up to 2 remainder pixel rows/columns at the
//     bottom/right edge.
//   - SplitBySize cuts tiles of a caller-given size, counting rows and
//     columns by integer ceiling division and clamping edge tiles so every
//     source pixel is covered exactly once.
//
// Both emit tiles in row-major order (all columns of row 0, then row 1, and
// so on), and every tile owns its pixel buffer outright: nothing aliases
// the source image or another tile.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. A tile's X/Y is the
// top-left corner of the region it was cut from.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The splitters are pure
// functions over their inputs and can run concurrently on different images;
// each tile's extraction is independent and read-only over the source.
//
// # Error Handling
//
// Decode and file I/O failures propagate from the loader, wrapped but not
// interpreted. SplitBySize rejects tile dimensions below one pixel with
// ErrInvalidTileSize. All region coordinates the splitters compute lie
// within the image bounds, so extraction itself has no failure path.
package imaging
