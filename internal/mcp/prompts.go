package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterPrompts registers the analysis prompts. Each produces a single
// user message referencing the supplied argument.
func RegisterPrompts(s *server.MCPServer) {
	s.AddPrompt(
		mcp.NewPrompt("analyze_transaction",
			mcp.WithPromptDescription("Generate a prompt to analyze a blockchain transaction."),
			mcp.WithArgument("transaction_hash",
				mcp.ArgumentDescription("Transaction hash to analyze"),
				mcp.RequiredArgument(),
			),
		),
		promptHandler("transaction_hash",
			"Analyze this blockchain transaction: %s. Provide details about the transaction, its purpose, gas usage, and any token transfers involved."),
	)

	s.AddPrompt(
		mcp.NewPrompt("explore_address",
			mcp.WithPromptDescription("Generate a prompt to explore a blockchain address."),
			mcp.WithArgument("address",
				mcp.ArgumentDescription("Address hash to explore"),
				mcp.RequiredArgument(),
			),
		),
		promptHandler("address",
			"Explore this blockchain address: %s. Find information about its transactions, token holdings, and activity patterns."),
	)

	s.AddPrompt(
		mcp.NewPrompt("research_token",
			mcp.WithPromptDescription("Generate a prompt to research a token."),
			mcp.WithArgument("token_symbol",
				mcp.ArgumentDescription("Token symbol or name to research"),
				mcp.RequiredArgument(),
			),
		),
		promptHandler("token_symbol",
			"Research the token %s. Find its contract address, market data, holders, and recent activity."),
	)
}

// promptHandler builds a handler that formats the named argument into the
// message template.
func promptHandler(argName, template string) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		value := req.Params.Arguments[argName]
		if value == "" {
			return nil, fmt.Errorf("%s argument is required", argName)
		}
		return mcp.NewGetPromptResult(
			"",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(template, value))),
			},
		), nil
	}
}
