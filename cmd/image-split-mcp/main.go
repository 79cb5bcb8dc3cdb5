package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-split-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-split-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-split-mcp - MCP server for splitting images into tile grids")
			fmt.Println()
			fmt.Println("Usage: image-split-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println("  --http [ADDR]    Serve the HTTP tile preview instead of MCP (default :8399)")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_SPLIT_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("Without --http this server communicates via MCP protocol over")
			fmt.Println("stdin/stdout. Configure it in your MCP client (e.g., Claude Desktop).")
			return
		case "--http":
			configureLogging()
			addr := ":8399"
			if len(os.Args) > 2 {
				addr = os.Args[2]
			}
			log.Printf("Serving tile preview on %s", addr)
			if err := server.NewHTTP().ListenAndServe(addr); err != nil {
				log.Fatalf("HTTP server error: %v", err)
			}
			return
		}
	}

	configureLogging()

	if os.Getenv("IMAGE_SPLIT_LOG_LEVEL") == "debug" {
		log.Printf("Image Split MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// configureLogging sends logs to stderr; stdout is reserved for the MCP
// protocol.
func configureLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}
