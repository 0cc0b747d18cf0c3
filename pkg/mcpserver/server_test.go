package mcpserver

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scopegreen/scopegreen-mcp/pkg/tools"
)

func TestDecodeArguments(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want map[string]any
	}{
		{name: "nil", raw: nil, want: map[string]any{}},
		{name: "map", raw: map[string]any{"item_name": "steel"}, want: map[string]any{"item_name": "steel"}},
		{name: "raw json", raw: json.RawMessage(`{"item_name":"steel"}`), want: map[string]any{"item_name": "steel"}},
		{name: "empty raw json", raw: json.RawMessage(nil), want: map[string]any{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeArguments(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}

	if _, err := decodeArguments(json.RawMessage(`[1,2]`)); err == nil {
		t.Error("non-object arguments should error")
	}
}

func TestToCallResult(t *testing.T) {
	success := toCallResult(tools.JSONResult(map[string]any{"metrics": []string{"Land Use"}}))
	if success.IsError {
		t.Error("success result should not set IsError")
	}
	if text := textOf(t, success); text != `{"metrics":["Land Use"]}` {
		t.Errorf("got text %s", text)
	}

	failure := toCallResult(tools.ErrorResult("search_lca_metrics", "API request failed with status 404"))
	if !failure.IsError {
		t.Error("error result should set IsError")
	}
	if text := textOf(t, failure); text != "API request failed with status 404" {
		t.Errorf("got text %s", text)
	}
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want text", result.Content[0])
	}
	return text.Text
}
