package mcp

// Shared path parameters. Every occurrence of a placeholder in a path
// template must have a matching entry here or inline.

func txHashParam() Param {
	return Param{
		Name:        "transaction_hash",
		Description: "Transaction hash (0x-prefixed)",
		Type:        ParamString,
		In:          InPath,
		Required:    true,
	}
}

func addressParam(desc string) Param {
	return Param{
		Name:        "address_hash",
		Description: desc,
		Type:        ParamString,
		In:          InPath,
		Required:    true,
	}
}

func blockParam() Param {
	return Param{
		Name:        "block_number_or_hash",
		Description: "Block number or block hash",
		Type:        ParamString,
		In:          InPath,
		Required:    true,
	}
}

func instanceParam() Param {
	return Param{
		Name:        "instance_id",
		Description: "Token instance ID",
		Type:        ParamString,
		In:          InPath,
		Required:    true,
	}
}

// Catalog returns the static routing table: every BlockScout tool, its
// path template, and its parameter schema. The table is data; all behavior
// lives in the generic handler.
func Catalog() []ToolSpec {
	return []ToolSpec{
		// Search
		{
			Name:        "search_blockchain",
			Description: "Search for addresses, tokens, blocks, or transactions on the blockchain.",
			Path:        "/search",
			Params: []Param{
				{Name: "query", Description: "Search query (address, token name, block number, or transaction hash)", Type: ParamString, In: InQuery, Required: true, Query: "q"},
			},
		},
		{
			Name:        "check_search_redirect",
			Description: "Check if a search query should redirect to a specific page.",
			Path:        "/search/check-redirect",
			Params: []Param{
				{Name: "query", Description: "Search query to check", Type: ParamString, In: InQuery, Required: true, Query: "q"},
			},
		},

		// Transactions
		{
			Name:        "get_transactions",
			Description: "Get transactions with optional filtering by status, type, or method.",
			Path:        "/transactions",
			Params: []Param{
				{Name: "filter_type", Description: "Filter by status: pending or validated", Type: ParamString, In: InQuery, Query: "filter", Enum: []string{"pending", "validated"}},
				{Name: "transaction_type", Description: "Filter by transaction type (e.g. token_transfer, contract_creation, coin_transfer)", Type: ParamString, In: InQuery, Query: "type"},
				{Name: "method", Description: "Filter by method name (e.g. approve, transfer)", Type: ParamString, In: InQuery},
			},
		},
		{
			Name:        "get_transaction_details",
			Description: "Get detailed information about a specific transaction by its hash.",
			Path:        "/transactions/{transaction_hash}",
			Params:      []Param{txHashParam()},
			Summarize:   summarizeTransaction,
		},
		{
			Name:        "get_transaction_token_transfers",
			Description: "Get token transfers for a specific transaction.",
			Path:        "/transactions/{transaction_hash}/token-transfers",
			Params: []Param{
				txHashParam(),
				{Name: "token_type", Description: "Filter by token type (e.g. ERC-20, ERC-721, ERC-1155)", Type: ParamString, In: InQuery, Query: "type"},
			},
		},
		{
			Name:        "get_transaction_internal_transactions",
			Description: "Get internal transactions for a specific transaction.",
			Path:        "/transactions/{transaction_hash}/internal-transactions",
			Params:      []Param{txHashParam()},
		},
		{
			Name:        "get_transaction_logs",
			Description: "Get logs for a specific transaction.",
			Path:        "/transactions/{transaction_hash}/logs",
			Params:      []Param{txHashParam()},
		},
		{
			Name:        "get_transaction_raw_trace",
			Description: "Get raw trace for a specific transaction.",
			Path:        "/transactions/{transaction_hash}/raw-trace",
			Params:      []Param{txHashParam()},
		},
		{
			Name:        "get_transaction_state_changes",
			Description: "Get state changes for a specific transaction.",
			Path:        "/transactions/{transaction_hash}/state-changes",
			Params:      []Param{txHashParam()},
		},
		{
			Name:        "get_transaction_summary",
			Description: "Get a human-readable summary for a specific transaction.",
			Path:        "/transactions/{transaction_hash}/summary",
			Params:      []Param{txHashParam()},
		},

		// Blocks
		{
			Name:        "get_blocks",
			Description: "Get blocks with optional type filtering (block, uncle, reorg).",
			Path:        "/blocks",
			Params: []Param{
				{Name: "block_type", Description: "Filter by block type", Type: ParamString, In: InQuery, Query: "type", Enum: []string{"block", "uncle", "reorg"}},
			},
		},
		{
			Name:        "get_block_details",
			Description: "Get specific block details by number or hash.",
			Path:        "/blocks/{block_number_or_hash}",
			Params:      []Param{blockParam()},
			Summarize:   summarizeBlock,
		},
		{
			Name:        "get_block_transactions",
			Description: "Get transactions for a specific block.",
			Path:        "/blocks/{block_number_or_hash}/transactions",
			Params:      []Param{blockParam()},
		},
		{
			Name:        "get_block_withdrawals",
			Description: "Get withdrawals for a specific block.",
			Path:        "/blocks/{block_number_or_hash}/withdrawals",
			Params:      []Param{blockParam()},
		},

		// Global lists
		{
			Name:        "get_token_transfers",
			Description: "Get recent token transfers across the network.",
			Path:        "/token-transfers",
		},
		{
			Name:        "get_internal_transactions",
			Description: "Get recent internal transactions across the network.",
			Path:        "/internal-transactions",
		},
		{
			Name:        "get_main_page_transactions",
			Description: "Get the transactions shown on the explorer main page.",
			Path:        "/main-page/transactions",
		},
		{
			Name:        "get_main_page_blocks",
			Description: "Get the blocks shown on the explorer main page.",
			Path:        "/main-page/blocks",
		},
		{
			Name:        "get_indexing_status",
			Description: "Get the explorer's indexing status.",
			Path:        "/main-page/indexing-status",
		},

		// Stats
		{
			Name:        "get_blockchain_stats",
			Description: "Get network statistics counters (blocks, transactions, addresses, gas).",
			Path:        "/stats",
		},
		{
			Name:        "get_transactions_chart",
			Description: "Get daily transaction chart data.",
			Path:        "/stats/charts/transactions",
		},
		{
			Name:        "get_market_chart",
			Description: "Get market chart data (price and market cap history).",
			Path:        "/stats/charts/market",
		},

		// Addresses
		{
			Name:        "get_addresses_list",
			Description: "Get the list of top addresses by balance.",
			Path:        "/addresses",
		},
		{
			Name:        "get_address_details",
			Description: "Get address details by hash (balance, contract status, tags).",
			Path:        "/addresses/{address_hash}",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
			Summarize:   summarizeAddress,
		},
		{
			Name:        "get_address_counters",
			Description: "Get counters for a specific address (transactions, transfers, gas usage).",
			Path:        "/addresses/{address_hash}/counters",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_transactions",
			Description: "Get transactions for a specific address.",
			Path:        "/addresses/{address_hash}/transactions",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_token_transfers",
			Description: "Get token transfers for a specific address.",
			Path:        "/addresses/{address_hash}/token-transfers",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_internal_transactions",
			Description: "Get internal transactions for a specific address.",
			Path:        "/addresses/{address_hash}/internal-transactions",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_logs",
			Description: "Get logs emitted by a specific address.",
			Path:        "/addresses/{address_hash}/logs",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_blocks_validated",
			Description: "Get blocks validated by a specific address.",
			Path:        "/addresses/{address_hash}/blocks-validated",
			Params:      []Param{addressParam("Validator address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_token_balances",
			Description: "Get all token balances for a specific address.",
			Path:        "/addresses/{address_hash}/token-balances",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_tokens",
			Description: "Get tokens held by a specific address, with paging.",
			Path:        "/addresses/{address_hash}/tokens",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_coin_balance_history",
			Description: "Get coin balance history for a specific address.",
			Path:        "/addresses/{address_hash}/coin-balance-history",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_coin_balance_history_by_day",
			Description: "Get daily coin balance history for a specific address.",
			Path:        "/addresses/{address_hash}/coin-balance-history-by-day",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_withdrawals",
			Description: "Get withdrawals for a specific address.",
			Path:        "/addresses/{address_hash}/withdrawals",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_nft",
			Description: "Get NFTs owned by a specific address.",
			Path:        "/addresses/{address_hash}/nft",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},
		{
			Name:        "get_address_nft_collections",
			Description: "Get NFT collections owned by a specific address.",
			Path:        "/addresses/{address_hash}/nft/collections",
			Params:      []Param{addressParam("Address hash (0x-prefixed)")},
		},

		// Tokens
		{
			Name:        "get_tokens_list",
			Description: "Get the list of tokens on the network.",
			Path:        "/tokens",
		},
		{
			Name:        "get_token_details",
			Description: "Get token details by contract address (name, symbol, supply, holders).",
			Path:        "/tokens/{address_hash}",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)")},
			Summarize:   summarizeToken,
		},
		{
			Name:        "get_token_transfers_by_token",
			Description: "Get transfers for a specific token.",
			Path:        "/tokens/{address_hash}/transfers",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)")},
		},
		{
			Name:        "get_token_holders",
			Description: "Get holders for a specific token.",
			Path:        "/tokens/{address_hash}/holders",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)")},
		},
		{
			Name:        "get_token_counters",
			Description: "Get counters for a specific token (transfers, holders).",
			Path:        "/tokens/{address_hash}/counters",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)")},
		},
		{
			Name:        "get_token_instances",
			Description: "Get instances for a specific token (NFT collection items).",
			Path:        "/tokens/{address_hash}/instances",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)")},
		},
		{
			Name:        "get_token_instance_details",
			Description: "Get a specific token instance by ID.",
			Path:        "/tokens/{address_hash}/instances/{instance_id}",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)"), instanceParam()},
		},
		{
			Name:        "get_token_instance_transfers",
			Description: "Get transfers for a specific token instance.",
			Path:        "/tokens/{address_hash}/instances/{instance_id}/transfers",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)"), instanceParam()},
		},
		{
			Name:        "get_token_instance_holders",
			Description: "Get holders for a specific token instance.",
			Path:        "/tokens/{address_hash}/instances/{instance_id}/holders",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)"), instanceParam()},
		},
		{
			Name:        "get_token_instance_transfers_count",
			Description: "Get the transfer count for a specific token instance.",
			Path:        "/tokens/{address_hash}/instances/{instance_id}/transfers-count",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)"), instanceParam()},
		},
		{
			Name:        "refetch_token_instance_metadata",
			Description: "Ask the explorer to refetch metadata for a token instance. Unlike every other tool, this triggers an upstream refresh action and is not idempotent.",
			Path:        "/tokens/{address_hash}/instances/{instance_id}/refetch-metadata",
			Params:      []Param{addressParam("Token contract address (0x-prefixed)"), instanceParam()},
			// Upstream performs a metadata refresh on this GET.
			NonIdempotent: true,
		},

		// Smart contracts
		{
			Name:        "get_smart_contracts_list",
			Description: "Get the list of verified smart contracts.",
			Path:        "/smart-contracts",
		},
		{
			Name:        "get_smart_contracts_counters",
			Description: "Get counters for verified smart contracts.",
			Path:        "/smart-contracts/counters",
		},
		{
			Name:        "get_smart_contract_details",
			Description: "Get verified smart contract details by address hash.",
			Path:        "/smart-contracts/{address_hash}",
			Params:      []Param{addressParam("Contract address (0x-prefixed)")},
		},
	}
}
