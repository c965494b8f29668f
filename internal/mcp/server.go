package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/duckchain-io/duckscan-mcp/internal/blockscout"
	"github.com/duckchain-io/duckscan-mcp/internal/common"
)

// Server bundles the MCP server with the router that feeds it.
type Server struct {
	MCP    *server.MCPServer
	Router *Router
}

// NewServer builds the MCP server: the full tool catalog, the static
// reference resources, the analysis prompts, and the version tool.
func NewServer(name string, client *blockscout.Client, logger *common.Logger) *Server {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	mcpServer := server.NewMCPServer(
		name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
	)

	router := NewRouter(client, logger)
	toolCount := router.Register(mcpServer)

	mcpServer.AddTool(VersionTool(), VersionToolHandler(client))
	RegisterResources(mcpServer)
	RegisterPrompts(mcpServer)

	logger.Info().
		Int("tools", toolCount+1).
		Str("upstream", client.BaseURL()).
		Msg("MCP server initialized")

	return &Server{
		MCP:    mcpServer,
		Router: router,
	}
}
