// Package tools defines the tools this server exposes to MCP clients:
// tool metadata, execution, and structured results.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool definition with its execution logic.
type Tool struct {
	mcp.Tool // Name, Description, InputSchema
	Execute  func(ctx context.Context, args map[string]any) (*Result, error)
}

// ToMCPTool returns the underlying mcp.Tool definition.
func (t *Tool) ToMCPTool() mcp.Tool {
	return t.Tool
}

// Result standardizes tool output. Tool failures are reported as error
// Results rather than Go errors, so the agent runtime always receives
// a well-formed payload.
type Result struct {
	Status  ResultStatus   `json:"status"`
	Content []ContentBlock `json:"content,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Text returns the text content of the result, or the error message
// when the result is an error with no content.
func (r *Result) Text() string {
	for _, block := range r.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	if r.Status == ResultError {
		return r.Error
	}
	return ""
}

// ContentBlock is one piece of result content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ResultStatus indicates the outcome of tool execution.
type ResultStatus string

const (
	// ResultSuccess indicates the tool completed successfully.
	ResultSuccess ResultStatus = "success"
	// ResultError indicates the tool failed with an error.
	ResultError ResultStatus = "error"
)
