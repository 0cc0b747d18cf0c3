// Package mcpserver hosts registered tools on an MCP server speaking
// the stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/scopegreen/scopegreen-mcp/pkg/tools"
)

// Server bridges a tool registry onto the MCP protocol.
type Server struct {
	srv *mcp.Server
	log zerolog.Logger
}

// New creates an MCP server and registers every tool in the registry.
func New(name, version string, registry *tools.Registry, log zerolog.Logger) *Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)
	s := &Server{srv: srv, log: log}
	for _, tool := range registry.List() {
		s.register(tool)
	}
	return s
}

// Run serves MCP over stdio until the transport closes or ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.srv.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) register(tool *tools.Tool) {
	mcpTool := tool.ToMCPTool()
	name := tool.Name
	execute := tool.Execute
	s.srv.AddTool(&mcpTool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			return errorCallResult(fmt.Sprintf("invalid arguments for %s: %v", name, err)), nil
		}
		ctx = s.log.With().Str("tool", name).Logger().WithContext(ctx)
		result, err := execute(ctx, args)
		if err != nil {
			// Execute contracts return structured errors; a Go error
			// here is a bug, but it must not escape as a fault.
			s.log.Error().Err(err).Str("tool", name).Msg("Tool execution returned an error")
			return errorCallResult(err.Error()), nil
		}
		return toCallResult(result), nil
	})
}

// decodeArguments normalizes tool-call arguments to a flat map,
// regardless of whether the SDK hands them over raw or decoded.
func decodeArguments(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case json.RawMessage:
		args := map[string]any{}
		if len(v) == 0 {
			return args, nil
		}
		if err := json.Unmarshal(v, &args); err != nil {
			return nil, err
		}
		return args, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	args := map[string]any{}
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, err
	}
	return args, nil
}

// toCallResult converts a tool result into the MCP wire shape.
func toCallResult(result *tools.Result) *mcp.CallToolResult {
	out := &mcp.CallToolResult{IsError: result.Status == tools.ResultError}
	for _, block := range result.Content {
		if block.Type == "text" {
			out.Content = append(out.Content, &mcp.TextContent{Text: block.Text})
		}
	}
	if len(out.Content) == 0 {
		out.Content = []mcp.Content{&mcp.TextContent{Text: result.Text()}}
	}
	return out
}

func errorCallResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}
