package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Split Operations
		{
			Name:        "image_split_uniform",
			Description: "Split an image into a fixed 3x3 grid of 9 equal tiles, returned row-major as base64-encoded images. Tile size is floor(width/3) x floor(height/3); leftover edge pixels are discarded when a dimension is not a multiple of 3.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "webp"},
						"description": "Tile encoding format. Default png",
						"default":     "png",
					},
					"include_colors": map[string]interface{}{
						"type":        "boolean",
						"description": "Include each tile's average color (hex, RGB, HSL)",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_split_by_size",
			Description: "Split an image into tiles of a given size, returned row-major as base64-encoded images. Row/column counts use ceiling division; tiles in the last row/column shrink to the remaining pixels so every source pixel is covered exactly once.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"tile_width": map[string]interface{}{
						"type":        "integer",
						"description": "Tile width in pixels (must be >= 1)",
					},
					"tile_height": map[string]interface{}{
						"type":        "integer",
						"description": "Tile height in pixels (must be >= 1)",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "webp"},
						"description": "Tile encoding format. Default png",
						"default":     "png",
					},
					"include_colors": map[string]interface{}{
						"type":        "boolean",
						"description": "Include each tile's average color (hex, RGB, HSL)",
						"default":     false,
					},
				},
				"required": []string{"path", "tile_width", "tile_height"},
			},
		},
		{
			Name:        "image_split_to_dir",
			Description: "Split an image and write the tiles as numbered files (tile_000, tile_001, ...) into a directory. Omit tile_width/tile_height for the fixed 3x3 grid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write tile files into (created if missing)",
					},
					"tile_width": map[string]interface{}{
						"type":        "integer",
						"description": "Tile width in pixels; omit for a uniform 3x3 split",
					},
					"tile_height": map[string]interface{}{
						"type":        "integer",
						"description": "Tile height in pixels; omit for a uniform 3x3 split",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "webp"},
						"description": "Tile file format. Default png",
						"default":     "png",
					},
				},
				"required": []string{"path", "output_dir"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
