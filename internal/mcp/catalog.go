// Package mcp wires the BlockScout tool catalog into an MCP server.
// Tools are declared as static ToolSpec entries; one generic handler
// validates arguments, builds the upstream path, and renders the result.
package mcp

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ParamType is the declared type of a tool parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamNumber  ParamType = "number"
	ParamBoolean ParamType = "boolean"
)

// ParamIn says where a parameter lands in the upstream request.
type ParamIn string

const (
	InPath  ParamIn = "path"
	InQuery ParamIn = "query"
)

// Param describes one parameter for a tool.
type Param struct {
	Name        string
	Description string
	Type        ParamType
	In          ParamIn
	Required    bool
	// Query overrides the upstream query parameter name when it differs
	// from the MCP argument name (e.g. "block_type" → "type").
	Query string
	// Enum restricts the allowed values for a string parameter.
	Enum []string
}

// queryName returns the upstream query parameter name.
func (p Param) queryName() string {
	if p.Query != "" {
		return p.Query
	}
	return p.Name
}

// ToolSpec defines one tool: a name, a path template with {placeholder}
// segments, and the parameter schema that fills it.
type ToolSpec struct {
	Name        string
	Description string
	Path        string
	Params      []Param
	// NonIdempotent marks the one tool whose upstream endpoint triggers a
	// metadata-refresh action. The transport behavior is identical; repeat
	// calls may observe different payloads.
	NonIdempotent bool
	// Summarize, when set, derives a human-readable line from the raw
	// payload. The line is prepended to the output; the raw payload is
	// always included unmodified.
	Summarize func(body json.RawMessage) string
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// ValidateToolSpec checks a ToolSpec for internal consistency: path
// placeholders must have matching required path parameters and vice versa,
// and enums only apply to string parameters.
func ValidateToolSpec(t ToolSpec) error {
	if t.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if t.Description == "" {
		return fmt.Errorf("tool %q has empty description", t.Name)
	}
	if !strings.HasPrefix(t.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /)", t.Name, t.Path)
	}
	if strings.Contains(t.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", t.Name, t.Path)
	}

	placeholders := map[string]bool{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(t.Path, -1) {
		placeholders[m[1]] = true
	}

	seen := map[string]bool{}
	for _, p := range t.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a parameter with empty name", t.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("tool %q declares parameter %q twice", t.Name, p.Name)
		}
		seen[p.Name] = true

		switch p.In {
		case InPath:
			if !placeholders[p.Name] {
				return fmt.Errorf("tool %q: path parameter %q has no {%s} placeholder", t.Name, p.Name, p.Name)
			}
			if !p.Required {
				return fmt.Errorf("tool %q: path parameter %q must be required", t.Name, p.Name)
			}
			if p.Type != ParamString {
				return fmt.Errorf("tool %q: path parameter %q must be a string", t.Name, p.Name)
			}
			delete(placeholders, p.Name)
		case InQuery:
		default:
			return fmt.Errorf("tool %q: parameter %q has unsupported location %q", t.Name, p.Name, p.In)
		}

		if len(p.Enum) > 0 && p.Type != ParamString {
			return fmt.Errorf("tool %q: parameter %q declares an enum on a non-string type", t.Name, p.Name)
		}
	}

	for name := range placeholders {
		return fmt.Errorf("tool %q: placeholder {%s} has no declared parameter", t.Name, name)
	}

	return nil
}

// BuildTool converts a ToolSpec into an mcp.Tool with the matching schema.
func BuildTool(t ToolSpec) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(t.Name, opts...)
}

// buildParamOption maps a Param to the appropriate mcp-go tool option.
func buildParamOption(p Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}
	if len(p.Enum) > 0 {
		opts = append(opts, mcp.Enum(p.Enum...))
	}

	switch p.Type {
	case ParamNumber:
		return mcp.WithNumber(p.Name, opts...)
	case ParamBoolean:
		return mcp.WithBoolean(p.Name, opts...)
	default:
		return mcp.WithString(p.Name, opts...)
	}
}
