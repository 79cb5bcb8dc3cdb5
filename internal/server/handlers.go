package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/image-split-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_split_uniform").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Split Operations
	case "image_split_uniform":
		return s.handleImageSplitUniform(args)
	case "image_split_by_size":
		return s.handleImageSplitBySize(args)
	case "image_split_to_dir":
		return s.handleImageSplitToDir(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Split Operation Handlers ===

// SplitResult is the response payload of the split tools: grid geometry
// plus one encoded entry per tile, in row-major order.
type SplitResult struct {
	Path          string              `json:"path"`
	Width         int                 `json:"width"`
	Height        int                 `json:"height"`
	Rows          int                 `json:"rows"`
	Cols          int                 `json:"cols"`
	TileWidth     int                 `json:"tile_width"`
	TileHeight    int                 `json:"tile_height"`
	CoveredWidth  int                 `json:"covered_width"`
	CoveredHeight int                 `json:"covered_height"`
	Tiles         []*imaging.TileData `json:"tiles"`
}

// buildSplitResult encodes tiles and assembles the shared result shape.
// CoveredWidth/CoveredHeight report how far the tiles extend; for the
// uniform split this is smaller than the image when dimensions are not
// multiples of 3.
func buildSplitResult(path string, img image.Image, rows, cols int, tiles []imaging.Tile, format string, includeColors bool) (*SplitResult, error) {
	bounds := img.Bounds()
	result := &SplitResult{
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Rows:   rows,
		Cols:   cols,
		Tiles:  make([]*imaging.TileData, 0, len(tiles)),
	}
	if len(tiles) > 0 {
		result.TileWidth = tiles[0].Width()
		result.TileHeight = tiles[0].Height()
	}

	for _, t := range tiles {
		data, err := imaging.EncodeTile(t, format)
		if err != nil {
			return nil, err
		}
		if includeColors {
			data.AverageColor = imaging.AverageColor(t)
		}
		if right := t.X + t.Width(); right > result.CoveredWidth {
			result.CoveredWidth = right
		}
		if bottom := t.Y + t.Height(); bottom > result.CoveredHeight {
			result.CoveredHeight = bottom
		}
		result.Tiles = append(result.Tiles, data)
	}
	return result, nil
}

type imageSplitUniformArgs struct {
	Path          string `json:"path"`
	Format        string `json:"format"`
	IncludeColors bool   `json:"include_colors"`
}

func (s *Server) handleImageSplitUniform(args json.RawMessage) (interface{}, error) {
	var a imageSplitUniformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	tiles := imaging.SplitUniform(img)
	return buildSplitResult(a.Path, img, imaging.GridRows, imaging.GridCols, tiles, a.Format, a.IncludeColors)
}

type imageSplitBySizeArgs struct {
	Path          string `json:"path"`
	TileWidth     int    `json:"tile_width"`
	TileHeight    int    `json:"tile_height"`
	Format        string `json:"format"`
	IncludeColors bool   `json:"include_colors"`
}

func (s *Server) handleImageSplitBySize(args json.RawMessage) (interface{}, error) {
	var a imageSplitBySizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	tiles, err := imaging.SplitBySize(img, a.TileWidth, a.TileHeight)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	cols := (bounds.Dx() + a.TileWidth - 1) / a.TileWidth
	rows := (bounds.Dy() + a.TileHeight - 1) / a.TileHeight
	return buildSplitResult(a.Path, img, rows, cols, tiles, a.Format, a.IncludeColors)
}

// SplitToDirResult lists the tile files written by image_split_to_dir.
type SplitToDirResult struct {
	OutputDir string   `json:"output_dir"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	Files     []string `json:"files"`
}

type imageSplitToDirArgs struct {
	Path       string `json:"path"`
	OutputDir  string `json:"output_dir"`
	TileWidth  int    `json:"tile_width"`
	TileHeight int    `json:"tile_height"`
	Format     string `json:"format"`
}

func (s *Server) handleImageSplitToDir(args json.RawMessage) (interface{}, error) {
	var a imageSplitToDirArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputDir == "" {
		return nil, fmt.Errorf("output_dir is required")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	// Without tile dimensions this falls back to the fixed 3x3 grid.
	var tiles []imaging.Tile
	var rows, cols int
	if a.TileWidth == 0 && a.TileHeight == 0 {
		tiles = imaging.SplitUniform(img)
		rows, cols = imaging.GridRows, imaging.GridCols
	} else {
		tiles, err = imaging.SplitBySize(img, a.TileWidth, a.TileHeight)
		if err != nil {
			return nil, err
		}
		bounds := img.Bounds()
		cols = (bounds.Dx() + a.TileWidth - 1) / a.TileWidth
		rows = (bounds.Dy() + a.TileHeight - 1) / a.TileHeight
	}

	files, err := imaging.SaveTiles(tiles, a.OutputDir, a.Format)
	if err != nil {
		return nil, err
	}

	return &SplitToDirResult{
		OutputDir: a.OutputDir,
		Rows:      rows,
		Cols:      cols,
		Files:     files,
	}, nil
}
