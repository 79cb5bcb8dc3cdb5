package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/ironsheep/image-split-mcp/internal/imaging"
)

// HTTPServer serves split tiles over HTTP so a grid layout can be inspected
// in a browser before committing to it. It shares no state with the stdio
// MCP server beyond using the same imaging primitives.
type HTTPServer struct {
	cache *imaging.ImageCache
}

// NewHTTP creates an HTTP preview server with an empty image cache.
func NewHTTP() *HTTPServer {
	return &HTTPServer{
		cache: imaging.NewImageCache(),
	}
}

// ListenAndServe serves preview requests on addr until the listener fails.
func (h *HTTPServer) ListenAndServe(addr string) error {
	srv := &fasthttp.Server{
		Handler: h.HandleRequest,
		Name:    "image-split-mcp",
	}
	return srv.ListenAndServe(addr)
}

// HandleRequest routes preview requests:
//
//	GET /grid?path=P&tile_width=W&tile_height=H
//	    JSON grid layout (rows, cols, per-tile rectangles), no pixel data.
//	GET /tile?path=P&tile_width=W&tile_height=H&row=R&col=C&format=png|webp
//	    One encoded tile with its Content-Type.
func (h *HTTPServer) HandleRequest(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/grid":
		h.handleGrid(ctx)
	case "/tile":
		h.handleTile(ctx)
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

// tileRect describes one tile's place in the grid without its pixels.
type tileRect struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type gridLayout struct {
	Path   string     `json:"path"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Rows   int        `json:"rows"`
	Cols   int        `json:"cols"`
	Tiles  []tileRect `json:"tiles"`
}

// splitParams extracts the query parameters shared by both endpoints.
func splitParams(ctx *fasthttp.RequestCtx) (path string, tileWidth, tileHeight int, err error) {
	path = string(ctx.QueryArgs().Peek("path"))
	if path == "" {
		return "", 0, 0, fmt.Errorf("path query parameter is required")
	}
	tileWidth, err = ctx.QueryArgs().GetUint("tile_width")
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid tile_width: %w", err)
	}
	tileHeight, err = ctx.QueryArgs().GetUint("tile_height")
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid tile_height: %w", err)
	}
	return path, tileWidth, tileHeight, nil
}

func (h *HTTPServer) handleGrid(ctx *fasthttp.RequestCtx) {
	path, tileWidth, tileHeight, err := splitParams(ctx)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		return
	}

	img, err := h.cache.Load(path)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}

	tiles, err := imaging.SplitBySize(img, tileWidth, tileHeight)
	if err != nil {
		status := fasthttp.StatusInternalServerError
		if errors.Is(err, imaging.ErrInvalidTileSize) {
			status = fasthttp.StatusBadRequest
		}
		ctx.Error(err.Error(), status)
		return
	}

	bounds := img.Bounds()
	layout := gridLayout{
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Cols:   (bounds.Dx() + tileWidth - 1) / tileWidth,
		Rows:   (bounds.Dy() + tileHeight - 1) / tileHeight,
		Tiles:  make([]tileRect, 0, len(tiles)),
	}
	for _, t := range tiles {
		layout.Tiles = append(layout.Tiles, tileRect{
			Row:    t.Row,
			Col:    t.Col,
			X:      t.X,
			Y:      t.Y,
			Width:  t.Width(),
			Height: t.Height(),
		})
	}

	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(layout); err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
	}
}

func (h *HTTPServer) handleTile(ctx *fasthttp.RequestCtx) {
	path, tileWidth, tileHeight, err := splitParams(ctx)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		return
	}
	row, err := ctx.QueryArgs().GetUint("row")
	if err != nil {
		ctx.Error(fmt.Sprintf("invalid row: %v", err), fasthttp.StatusBadRequest)
		return
	}
	col, err := ctx.QueryArgs().GetUint("col")
	if err != nil {
		ctx.Error(fmt.Sprintf("invalid col: %v", err), fasthttp.StatusBadRequest)
		return
	}
	format := string(ctx.QueryArgs().Peek("format"))
	switch format {
	case "", "png", "webp":
	default:
		ctx.Error(fmt.Sprintf("unsupported tile format: %q", format), fasthttp.StatusBadRequest)
		return
	}

	img, err := h.cache.Load(path)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}

	tiles, err := imaging.SplitBySize(img, tileWidth, tileHeight)
	if err != nil {
		status := fasthttp.StatusInternalServerError
		if errors.Is(err, imaging.ErrInvalidTileSize) {
			status = fasthttp.StatusBadRequest
		}
		ctx.Error(err.Error(), status)
		return
	}

	bounds := img.Bounds()
	cols := (bounds.Dx() + tileWidth - 1) / tileWidth
	rows := (bounds.Dy() + tileHeight - 1) / tileHeight
	if row >= rows || col >= cols {
		ctx.Error(fmt.Sprintf("tile (%d,%d) outside %dx%d grid", row, col, rows, cols),
			fasthttp.StatusNotFound)
		return
	}

	raw, mimeType, err := imaging.EncodeTileBytes(tiles[row*cols+col], format)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType(mimeType)
	ctx.SetBody(raw)
}
