package tools

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&Tool{Tool: mcp.Tool{Name: "search_lca_metrics"}})
	registry.Register(&Tool{Tool: mcp.Tool{Name: "get_available_metrics"}})

	if registry.Get("search_lca_metrics") == nil {
		t.Error("registered tool not found")
	}
	if registry.Get("unknown") != nil {
		t.Error("unknown tool should return nil")
	}

	listed := registry.List()
	if len(listed) != 2 {
		t.Fatalf("got %d tools, want 2", len(listed))
	}
	if listed[0].Name != "get_available_metrics" || listed[1].Name != "search_lca_metrics" {
		t.Errorf("listing not sorted: %s, %s", listed[0].Name, listed[1].Name)
	}
}

func TestRegistryReplaces(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&Tool{Tool: mcp.Tool{Name: "search_lca_metrics", Description: "old"}})
	registry.Register(&Tool{Tool: mcp.Tool{Name: "search_lca_metrics", Description: "new"}})

	if got := registry.Get("search_lca_metrics").Description; got != "new" {
		t.Errorf("got description %q, want replacement", got)
	}
	if len(registry.List()) != 1 {
		t.Errorf("replacement should not grow the registry")
	}
}
