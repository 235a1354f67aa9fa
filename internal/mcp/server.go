package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/knightsbridge/faqsite/internal/attempts"
	"github.com/knightsbridge/faqsite/internal/extension"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the FAQ, the install guide and
// the extension download.
type Server struct {
	source extension.Source
	ledger *attempts.Store
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server. ledger may be nil, in which case the
// download_stats tool is not registered.
func NewServer(src extension.Source, ledger *attempts.Store) *Server {
	s := &Server{
		source: src,
		ledger: ledger,
	}

	s.mcp = server.NewMCPServer(
		"faqsite",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listFAQsTool, s.handleListFAQs)
	s.mcp.AddTool(getFAQTool, s.handleGetFAQ)
	s.mcp.AddTool(getInstallInstructionsTool, s.handleGetInstallInstructions)
	s.mcp.AddTool(getDownloadURLTool, s.handleGetDownloadURL)
	if s.ledger != nil {
		s.mcp.AddTool(downloadStatsTool, s.handleDownloadStats)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
