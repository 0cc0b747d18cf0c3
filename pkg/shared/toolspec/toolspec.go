package toolspec

// Shared tool name, description and schema definitions for the
// ScopeGreen tools exposed over MCP.

const (
	SearchMetricsName        = "search_lca_metrics"
	SearchMetricsDescription = `Searches the ScopeGreen API for Life Cycle Assessment (LCA) metrics for specific items, processes, or energy types. Provides environmental impact data like carbon footprint.

IMPORTANT: Use the 'domain' parameter to get accurate results, especially for ambiguous items like 'electricity'. If an exact geographical match isn't found, data for a broader region (e.g., 'EU' instead of 'DE') might be returned as the best proxy. The 'explanation' field in the results describes the match quality and any proxies used.`

	AvailableMetricsName        = "get_available_metrics"
	AvailableMetricsDescription = "Gets the list of available metric types from the ScopeGreen API."
)

// SearchMetricsSchema returns the JSON schema for the search tool.
func SearchMetricsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"item_name": map[string]any{
				"type":        "string",
				"description": "Name of the item, material, process, or energy type (e.g., 'cotton t-shirt', 'steel beam', 'electricity grid mix'). Be specific for best results. REQUIRED.",
			},
			"metric": map[string]any{
				"type":        "string",
				"enum":        []string{"Carbon footprint", "EF3.1 Score", "Land Use"},
				"description": "The specific environmental metric. Defaults to 'Carbon footprint'.",
			},
			"year": map[string]any{
				"type":        "string",
				"description": "Year of the requested data (e.g., '2022', '2025'). Format YYYY. Must be >= 2020 if specified.",
			},
			"geography": map[string]any{
				"type":        "string",
				"description": "Region for the requested data. Use ISO 3166-1 alpha-2 codes (e.g., 'DE', 'US', 'FR') or broader regions ('EU', 'Global'). If omitted or unavailable, may return data for a parent region.",
			},
			"num_matches": map[string]any{
				"type":        "integer",
				"enum":        []int{1, 2, 3},
				"description": "How many ranked matches to return (1, 2, or 3). Defaults to 1.",
			},
			"unit": map[string]any{
				"type":        "string",
				"description": "Request conversion to a specific functional unit (e.g., 'g', 'kg/m2', 'kg CO2 eq / kWh'). If conversion is not possible or requested, original units are returned.",
			},
			"mode": map[string]any{
				"type":        "string",
				"enum":        []string{"lite", "pro"},
				"description": "Performance mode ('lite' or 'pro'). Currently 'pro' executes as 'lite'. Defaults to 'lite'.",
			},
			"domain": map[string]any{
				"type":        "string",
				"enum":        []string{"Materials & Products", "Processing", "Transport", "Energy", "Direct emissions"},
				"description": "VERY IMPORTANT filter for context. Use 'Energy' for electricity generation/consumption, 'Transport' for transportation methods, 'Processing' for industrial processes, 'Materials & Products' for goods. If omitted, defaults to 'Materials & Products', which may yield incorrect results for non-product items.",
			},
			"not_english": map[string]any{
				"type":        "boolean",
				"description": "Set to true if the item_name is not in English to enable auto-translation. Defaults to false.",
			},
		},
		"required": []string{"item_name"},
	}
}

// AvailableMetricsSchema returns the JSON schema for the availability
// tool, which takes no parameters.
func AvailableMetricsSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}
