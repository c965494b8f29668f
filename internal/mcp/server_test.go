package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/duckchain-io/duckscan-mcp/internal/blockscout"
	"github.com/duckchain-io/duckscan-mcp/internal/common"
)

func TestNewServer_RegistersFullCatalog(t *testing.T) {
	client, err := blockscout.New(blockscout.Config{
		BaseURL: "https://blockscout.com/poa/core/api/v2",
		Timeout: 5 * time.Second,
	}, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	srv := NewServer("test", client, common.NewSilentLogger())
	if srv.MCP == nil {
		t.Fatal("Expected MCP server to be constructed")
	}
	if got := len(srv.Router.Tools()); got != len(Catalog()) {
		t.Errorf("Expected %d routed tools, got %d", len(Catalog()), got)
	}
}

func TestVersionToolHandler(t *testing.T) {
	client, err := blockscout.New(blockscout.Config{
		BaseURL: "https://scan.duckchain.io/api/v2",
		Timeout: 30 * time.Second,
	}, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	handler := VersionToolHandler(client)
	result, err := handler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("Expected success result")
	}

	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "https://scan.duckchain.io/api/v2") {
		t.Errorf("Version output should include the upstream URL: %s", text)
	}
	if !strings.Contains(text, "Version:") {
		t.Errorf("Version output should include version info: %s", text)
	}
}

func TestStaticResourceHandler(t *testing.T) {
	handler := staticResourceHandler(apiDocsURI, "text/markdown", apiDocsText)
	contents, err := handler(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("Expected one content item, got %d", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("Expected text contents, got %T", contents[0])
	}
	if text.URI != apiDocsURI {
		t.Errorf("Expected URI %s, got %s", apiDocsURI, text.URI)
	}
	if !strings.Contains(text.Text, "get_transaction_details") {
		t.Error("API docs should list the transaction details tool")
	}
}

func TestAPIDocs_ListEveryCatalogTool(t *testing.T) {
	for _, spec := range Catalog() {
		if !strings.Contains(apiDocsText, spec.Name) {
			t.Errorf("API docs resource is missing tool %q", spec.Name)
		}
	}
}

func TestPromptHandler(t *testing.T) {
	handler := promptHandler("transaction_hash",
		"Analyze this blockchain transaction: %s. Provide details.")

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"transaction_hash": "0xabc"}

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("Expected one message, got %d", len(result.Messages))
	}
	if result.Messages[0].Role != mcp.RoleUser {
		t.Errorf("Expected user role, got %s", result.Messages[0].Role)
	}

	content, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Messages[0].Content)
	}
	if !strings.Contains(content.Text, "0xabc") {
		t.Errorf("Prompt should reference the argument: %s", content.Text)
	}
}

func TestPromptHandler_MissingArgument(t *testing.T) {
	handler := promptHandler("address", "Explore %s.")

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{}

	if _, err := handler(context.Background(), req); err == nil {
		t.Error("Expected error for missing prompt argument")
	}
}
