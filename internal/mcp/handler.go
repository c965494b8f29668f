package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/duckchain-io/duckscan-mcp/internal/blockscout"
	"github.com/duckchain-io/duckscan-mcp/internal/common"
)

// Router routes tool invocations: it validates arguments against the
// catalog schema, delegates the fetch to the blockscout client, and renders
// the outcome. It holds no per-invocation state.
type Router struct {
	client *blockscout.Client
	logger *common.Logger
	specs  []ToolSpec
	byName map[string]ToolSpec
}

// NewRouter builds a Router over the static catalog. Specs that fail
// validation are skipped with a warning.
func NewRouter(client *blockscout.Client, logger *common.Logger) *Router {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	r := &Router{
		client: client,
		logger: logger,
		byName: make(map[string]ToolSpec),
	}
	for _, spec := range Catalog() {
		if err := ValidateToolSpec(spec); err != nil {
			logger.Warn().Str("error", err.Error()).Msg("skipping invalid tool spec")
			continue
		}
		if _, dup := r.byName[spec.Name]; dup {
			logger.Warn().Str("name", spec.Name).Msg("skipping duplicate tool spec")
			continue
		}
		r.byName[spec.Name] = spec
		r.specs = append(r.specs, spec)
	}
	return r
}

// Register adds every catalog tool to the MCP server and returns the count.
func (r *Router) Register(s *server.MCPServer) int {
	for _, spec := range r.specs {
		s.AddTool(BuildTool(spec), r.handlerFor(spec))
	}
	return len(r.specs)
}

// Tools returns a copy of the registered tool specs.
func (r *Router) Tools() []ToolSpec {
	out := make([]ToolSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Invoke routes a tool call by name. Unknown names produce an error result
// without touching the network.
func (r *Router) Invoke(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	spec, ok := r.byName[name]
	if !ok {
		return errorResult(fmt.Sprintf("Error: unknown tool %q", name)), nil
	}
	return r.invoke(ctx, spec, args)
}

// handlerFor wraps one catalog entry as an mcp-go tool handler.
func (r *Router) handlerFor(spec ToolSpec) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return r.invoke(ctx, spec, req.GetArguments())
	}
}

// invoke validates args, builds the upstream path and query, performs the
// fetch, and renders the result. Validation is strictly local: no request
// is issued until every declared parameter checks out.
func (r *Router) invoke(ctx context.Context, spec ToolSpec, args map[string]any) (*mcp.CallToolResult, error) {
	log := r.logger.WithCorrelationId(uuid.New().String())
	log.Info().Str("tool", spec.Name).Msg("tool invocation")

	path, query, err := buildRequest(spec, args)
	if err != nil {
		log.Warn().Str("tool", spec.Name).Str("error", err.Error()).Msg("invalid parameters")
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}

	body, err := r.client.Get(ctx, path, query)
	if err != nil {
		log.Error().Err(err).Str("tool", spec.Name).Str("path", path).Msg("tool invocation failed")
		return errorResult(fmt.Sprintf("Error: %v", err)), nil
	}

	text := string(body)
	if spec.Summarize != nil {
		if summary := spec.Summarize(body); summary != "" {
			text = summary + "\n\n" + text
		}
	}
	return textResult(text), nil
}

// buildRequest resolves the concrete path and query values for a tool call.
// It returns a descriptive error naming the offending field when a required
// parameter is missing, mistyped, or outside its enum.
func buildRequest(spec ToolSpec, args map[string]any) (string, url.Values, error) {
	path := spec.Path
	query := url.Values{}

	for _, p := range spec.Params {
		raw, present := args[p.Name]
		if !present || raw == nil {
			if p.Required {
				return "", nil, fmt.Errorf("%s parameter is required", p.Name)
			}
			continue
		}

		val, err := coerceParam(p, raw)
		if err != nil {
			return "", nil, err
		}

		switch p.In {
		case InPath:
			if val == "" {
				return "", nil, fmt.Errorf("%s parameter is required", p.Name)
			}
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(val))
		case InQuery:
			if val != "" {
				query.Set(p.queryName(), val)
			}
		}
	}

	return path, query, nil
}

// coerceParam checks a raw argument against the declared type and enum and
// renders it as the string that goes on the wire.
func coerceParam(p Param, raw any) (string, error) {
	var val string
	switch p.Type {
	case ParamString:
		s, ok := raw.(string)
		if !ok {
			return "", fmt.Errorf("%s parameter must be a string", p.Name)
		}
		val = s
	case ParamNumber:
		switch n := raw.(type) {
		case float64:
			val = strconv.FormatFloat(n, 'f', -1, 64)
		case int:
			val = strconv.Itoa(n)
		default:
			return "", fmt.Errorf("%s parameter must be a number", p.Name)
		}
	case ParamBoolean:
		b, ok := raw.(bool)
		if !ok {
			return "", fmt.Errorf("%s parameter must be a boolean", p.Name)
		}
		val = strconv.FormatBool(b)
	default:
		return "", fmt.Errorf("%s parameter has unsupported type %q", p.Name, p.Type)
	}

	if len(p.Enum) > 0 && val != "" {
		for _, allowed := range p.Enum {
			if val == allowed {
				return val, nil
			}
		}
		return "", fmt.Errorf("%s parameter must be one of: %s", p.Name, strings.Join(p.Enum, ", "))
	}

	return val, nil
}

// --- Result helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
