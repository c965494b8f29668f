package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/duckchain-io/duckscan-mcp/internal/blockscout"
	"github.com/duckchain-io/duckscan-mcp/internal/common"
)

// VersionTool reports the server version and configured upstream. It makes
// no upstream call, so it also works as a connectivity smoke test for the
// MCP transport itself.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the DuckScan MCP server version and the configured BlockScout upstream. Use this to verify connectivity."),
	)
}

// VersionToolHandler renders version/build info plus the client's
// configuration.
func VersionToolHandler(client *blockscout.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := fmt.Sprintf("DuckScan MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nUpstream: %s\nTimeout: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit(),
			client.BaseURL(), client.Timeout())
		return textResult(text), nil
	}
}
