// Package server exposes the image splitting tools over MCP and HTTP.
//
// The primary surface is an MCP (Model Context Protocol) server: a JSON-RPC
// 2.0 loop over stdio, designed for Claude and other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Split Operations:
//   - image_split_uniform: Fixed 3x3 grid of equal tiles
//   - image_split_by_size: Tiles of a caller-given size, edge tiles clamped
//   - image_split_to_dir: Split and write numbered tile files
//
// # HTTP Preview
//
// HTTPServer is a small fasthttp transport over the same primitives,
// serving grid layouts as JSON and single encoded tiles for inspection in
// a browser. It is started with the --http flag instead of the stdio loop.
//
// # Image Caching
//
// Both servers keep an in-memory cache of decoded images keyed by path, so
// repeated split calls on the same file decode it once. The cache persists
// for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// The HTTP transport maps the same failures onto status codes: 400 for bad
// parameters (including invalid tile dimensions), 404 for a tile position
// outside the grid, 500 for decode failures.
package server
