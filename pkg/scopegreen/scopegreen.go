// Package scopegreen is a thin client for the ScopeGreen Life Cycle
// Assessment API. Every call performs a single bearer-authenticated GET
// and returns either the decoded JSON body or a normalized error.
package scopegreen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production ScopeGreen API endpoint.
	DefaultBaseURL = "https://scopegreen-main-1a948ab.d2.zuplo.dev"
	// DefaultAPIKeyEnv is the environment variable holding the API key.
	DefaultAPIKeyEnv = "SCOPEGREEN_API_KEY"

	searchPath    = "/api/metrics/search"
	availablePath = "/api/metrics/available"
)

// Config holds the client configuration. APIKey is an optional static
// key; when empty, the key is looked up from APIKeyEnv on every call so
// that credential rotation does not require a restart.
type Config struct {
	APIKey    string
	APIKeyEnv string
	BaseURL   string
}

// Client issues requests against the ScopeGreen API. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	cfg Config
}

// NewClient creates a client, filling in defaults for unset fields.
func NewClient(cfg Config) *Client {
	if strings.TrimSpace(cfg.APIKeyEnv) == "" {
		cfg.APIKeyEnv = DefaultAPIKeyEnv
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return &Client{cfg: cfg}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// Search looks up LCA metrics for an item, material, process or energy
// type. When no domain is given, "Materials & Products" is substituted
// before the request is sent. The backend applies the same default;
// substituting here keeps the effective domain explicit in the outbound
// query and in the logs instead of being decided remotely.
func (c *Client) Search(ctx context.Context, req SearchRequest) Result {
	query := req.queryParams()
	zerolog.Ctx(ctx).Info().
		Str("item_name", req.ItemName).
		Str("domain", string(req.effectiveDomain())).
		Str("params", query.Encode()).
		Msg("Executing ScopeGreen search")
	return c.call(ctx, searchPath, query)
}

// AvailableMetrics fetches the list of metric types the API can serve.
func (c *Client) AvailableMetrics(ctx context.Context) Result {
	zerolog.Ctx(ctx).Info().Msg("Fetching available ScopeGreen metrics")
	return c.call(ctx, availablePath, nil)
}

// call performs one GET against the API. All failure paths are mapped
// to a CallError; callers never see a raw transport fault.
func (c *Client) call(ctx context.Context, path string, query url.Values) Result {
	log := zerolog.Ctx(ctx)

	apiKey := c.resolveAPIKey()
	if apiKey == "" {
		return errorResult(missingCredentialError(c.cfg.APIKeyEnv))
	}

	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to build API request")
		return errorResult(unexpectedError())
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("ScopeGreen API request failed")
		return errorResult(connectionError())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to read API response body")
		return errorResult(unexpectedError())
	}
	log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("ScopeGreen API response received")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorResult(statusError(resp.StatusCode, body))
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to parse API response body")
		return errorResult(unexpectedError())
	}
	return Result{Payload: payload}
}

// resolveAPIKey returns the static key when configured, otherwise reads
// the environment on every call.
func (c *Client) resolveAPIKey() string {
	if key := strings.TrimSpace(c.cfg.APIKey); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv(c.cfg.APIKeyEnv))
}

func missingCredentialError(envName string) *CallError {
	return &CallError{Message: fmt.Sprintf("%s not found in environment variables", envName)}
}

// statusError maps a non-2xx response to a CallError, keeping the body
// as parsed JSON when possible and falling back to the raw text.
func statusError(status int, body []byte) *CallError {
	var details any
	if err := json.Unmarshal(body, &details); err != nil {
		details = string(body)
	}
	return &CallError{
		Message: fmt.Sprintf("API request failed with status %d", status),
		Details: details,
	}
}

func connectionError() *CallError {
	return &CallError{Message: "Failed to connect to the ScopeGreen API."}
}

func unexpectedError() *CallError {
	return &CallError{Message: "An unexpected error occurred during the API call."}
}
