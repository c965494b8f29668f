package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const apiDocsURI = "duckscan://api-docs"

const supportedNetworksURI = "duckscan://networks/supported"

const apiDocsText = `# DuckScan MCP Server — BlockScout API v2 Integration

Every tool maps to one GET against the configured BlockScout instance.

## Search
- search_blockchain: search addresses, tokens, blocks, or transactions
- check_search_redirect: check if a search should redirect to a specific page

## Transactions
- get_transactions: list transactions with optional filter/type/method
- get_transaction_details: transaction details by hash
- get_transaction_token_transfers: token transfers for a transaction
- get_transaction_internal_transactions: internal transactions for a transaction
- get_transaction_logs: logs for a transaction
- get_transaction_raw_trace: raw trace for a transaction
- get_transaction_state_changes: state changes for a transaction
- get_transaction_summary: summary for a transaction

## Blocks
- get_blocks: list blocks, optional type filter (block, uncle, reorg)
- get_block_details: block details by number or hash
- get_block_transactions: transactions in a block
- get_block_withdrawals: withdrawals in a block

## Global lists and stats
- get_token_transfers, get_internal_transactions
- get_main_page_transactions, get_main_page_blocks, get_indexing_status
- get_blockchain_stats, get_transactions_chart, get_market_chart

## Addresses
- get_addresses_list, get_address_details, get_address_counters
- get_address_transactions, get_address_token_transfers
- get_address_internal_transactions, get_address_logs
- get_address_blocks_validated, get_address_token_balances
- get_address_tokens, get_address_coin_balance_history
- get_address_coin_balance_history_by_day, get_address_withdrawals
- get_address_nft, get_address_nft_collections

## Tokens
- get_tokens_list, get_token_details, get_token_transfers_by_token
- get_token_holders, get_token_counters, get_token_instances
- get_token_instance_details, get_token_instance_transfers
- get_token_instance_holders, get_token_instance_transfers_count
- refetch_token_instance_metadata (triggers an upstream refresh; not idempotent)

## Smart contracts
- get_smart_contracts_list, get_smart_contracts_counters
- get_smart_contract_details

## Server
- get_version: server version and configured upstream
`

const supportedNetworksText = `Supported BlockScout Networks:

- Ethereum Mainnet (blockscout.com/eth/mainnet)
- Ethereum Goerli (blockscout.com/eth/goerli)
- Polygon (blockscout.com/matic/mainnet)
- BSC (blockscout.com/bsc/mainnet)
- Arbitrum (blockscout.com/arbitrum/mainnet)
- Optimism (blockscout.com/optimism/mainnet)
- Avalanche (blockscout.com/avax/mainnet)
- Fantom (blockscout.com/ftm/mainnet)
- Gnosis Chain (blockscout.com/gnosis/mainnet)
- POA Core (blockscout.com/poa/core)
- DuckChain (scan.duckchain.io) - Default

Point DUCKSCAN_BASE_URL (or upstream.base_url in the config file) at any
BlockScout v2 instance's /api/v2 root to switch networks.
`

// RegisterResources registers the two static reference documents.
func RegisterResources(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(apiDocsURI,
			"api docs",
			mcp.WithResourceDescription("BlockScout API v2 tool reference"),
			mcp.WithMIMEType("text/markdown"),
		),
		staticResourceHandler(apiDocsURI, "text/markdown", apiDocsText),
	)

	s.AddResource(
		mcp.NewResource(supportedNetworksURI,
			"supported networks",
			mcp.WithResourceDescription("List of supported BlockScout networks"),
			mcp.WithMIMEType("text/plain"),
		),
		staticResourceHandler(supportedNetworksURI, "text/plain", supportedNetworksText),
	)
}

func staticResourceHandler(uri, mimeType, text string) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: mimeType,
				Text:     text,
			},
		}, nil
	}
}
