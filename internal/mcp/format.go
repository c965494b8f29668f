package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Summaries are derived convenience lines pulled out of the opaque upstream
// payload. They are additive: the raw payload always follows unmodified.
// When an expected field is absent the summary is dropped rather than
// guessed at.

func summarizeTransaction(body json.RawMessage) string {
	r := gjson.ParseBytes(body)
	hash := r.Get("hash").String()
	if hash == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Transaction %s", hash))
	if status := r.Get("status").String(); status != "" {
		sb.WriteString(fmt.Sprintf(" — status: %s", status))
	}
	if block := r.Get("block_number"); block.Exists() {
		sb.WriteString(fmt.Sprintf(", block: %d", block.Int()))
	} else if block := r.Get("block"); block.Exists() {
		sb.WriteString(fmt.Sprintf(", block: %d", block.Int()))
	}
	if from := r.Get("from.hash").String(); from != "" {
		sb.WriteString(fmt.Sprintf(", from: %s", from))
	}
	if to := r.Get("to.hash").String(); to != "" {
		sb.WriteString(fmt.Sprintf(", to: %s", to))
	}
	if value := r.Get("value").String(); value != "" {
		sb.WriteString(fmt.Sprintf(", value: %s wei", value))
	}
	return sb.String()
}

func summarizeBlock(body json.RawMessage) string {
	r := gjson.ParseBytes(body)
	height := r.Get("height")
	if !height.Exists() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Block %d", height.Int()))
	if hash := r.Get("hash").String(); hash != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", hash))
	}
	if txCount := r.Get("transactions_count"); txCount.Exists() {
		sb.WriteString(fmt.Sprintf(" — %d transactions", txCount.Int()))
	}
	if miner := r.Get("miner.hash").String(); miner != "" {
		sb.WriteString(fmt.Sprintf(", validated by %s", miner))
	}
	return sb.String()
}

func summarizeAddress(body json.RawMessage) string {
	r := gjson.ParseBytes(body)
	hash := r.Get("hash").String()
	if hash == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Address %s", hash))
	if balance := r.Get("coin_balance").String(); balance != "" {
		sb.WriteString(fmt.Sprintf(" — balance: %s wei", balance))
	}
	if r.Get("is_contract").Bool() {
		sb.WriteString(" (contract)")
	}
	return sb.String()
}

func summarizeToken(body json.RawMessage) string {
	r := gjson.ParseBytes(body)
	name := r.Get("name").String()
	symbol := r.Get("symbol").String()
	if name == "" && symbol == "" {
		return ""
	}

	var sb strings.Builder
	switch {
	case name != "" && symbol != "":
		sb.WriteString(fmt.Sprintf("Token %s (%s)", name, symbol))
	case name != "":
		sb.WriteString(fmt.Sprintf("Token %s", name))
	default:
		sb.WriteString(fmt.Sprintf("Token %s", symbol))
	}
	if tokenType := r.Get("type").String(); tokenType != "" {
		sb.WriteString(fmt.Sprintf(" — %s", tokenType))
	}
	if holders := r.Get("holders").String(); holders != "" {
		sb.WriteString(fmt.Sprintf(", %s holders", holders))
	}
	return sb.String()
}
