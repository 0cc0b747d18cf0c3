package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scopegreen/scopegreen-mcp/pkg/scopegreen"
	"github.com/scopegreen/scopegreen-mcp/pkg/shared/toolspec"
)

// SearchMetrics builds the search_lca_metrics tool bound to client.
func SearchMetrics(client *scopegreen.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.SearchMetricsName,
			Description: toolspec.SearchMetricsDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Search LCA Metrics", ReadOnlyHint: true},
			InputSchema: toolspec.SearchMetricsSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			req, err := parseSearchArgs(args)
			if err != nil {
				return ErrorResult(toolspec.SearchMetricsName, err.Error()), nil
			}
			return gatewayResult(client.Search(ctx, req)), nil
		},
	}
}

// AvailableMetrics builds the get_available_metrics tool bound to
// client.
func AvailableMetrics(client *scopegreen.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.AvailableMetricsName,
			Description: toolspec.AvailableMetricsDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Available Metrics", ReadOnlyHint: true},
			InputSchema: toolspec.AvailableMetricsSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return gatewayResult(client.AvailableMetrics(ctx)), nil
		},
	}
}

// parseSearchArgs maps tool-call arguments onto a SearchRequest. Only
// structural validation happens here; value constraints like the year
// bound are enforced by the API.
func parseSearchArgs(args map[string]any) (scopegreen.SearchRequest, error) {
	var req scopegreen.SearchRequest

	itemName, err := ReadString(args, "item_name", true)
	if err != nil {
		return req, err
	}
	metric, err := ReadString(args, "metric", false)
	if err != nil {
		return req, err
	}
	year, err := ReadString(args, "year", false)
	if err != nil {
		return req, err
	}
	geography, err := ReadString(args, "geography", false)
	if err != nil {
		return req, err
	}
	numMatches, err := ReadInt(args, "num_matches", 0)
	if err != nil {
		return req, err
	}
	unit, err := ReadString(args, "unit", false)
	if err != nil {
		return req, err
	}
	mode, err := ReadString(args, "mode", false)
	if err != nil {
		return req, err
	}
	domain, err := ReadString(args, "domain", false)
	if err != nil {
		return req, err
	}

	req = scopegreen.SearchRequest{
		ItemName:   itemName,
		Metric:     scopegreen.Metric(metric),
		Year:       year,
		Geography:  geography,
		NumMatches: numMatches,
		Unit:       unit,
		Mode:       scopegreen.Mode(mode),
		Domain:     scopegreen.Domain(domain),
		NotEnglish: ReadBoolDefault(args, "not_english", false),
	}
	return req, nil
}

// gatewayResult converts an API call result into a tool result. Error
// results carry the {"error": ..., "details": ...} body shape in the
// text content.
func gatewayResult(res scopegreen.Result) *Result {
	result := JSONResult(res.Body())
	if !res.OK() {
		result.Status = ResultError
		result.Error = res.Err.Message
	}
	return result
}
