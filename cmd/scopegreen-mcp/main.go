package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/scopegreen/scopegreen-mcp/pkg/config"
	"github.com/scopegreen/scopegreen-mcp/pkg/mcpserver"
	"github.com/scopegreen/scopegreen-mcp/pkg/scopegreen"
	"github.com/scopegreen/scopegreen-mcp/pkg/tools"
)

// Information to find out exactly which commit the server was built
// from. These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const serverVersion = "0.1.0"

func main() {
	// stdout carries the MCP wire protocol, so all logging goes to
	// stderr.
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	settings := config.LoadSettings(config.ResolveSettingsPath(os.Getenv(config.SettingsPathEnv))).ApplyEnv()
	client := scopegreen.NewClient(scopegreen.Config{
		APIKey:    settings.APIKey,
		APIKeyEnv: settings.APIKeyEnv,
		BaseURL:   settings.BaseURL,
	})

	registry := tools.NewRegistry()
	registry.Register(tools.SearchMetrics(client))
	registry.Register(tools.AvailableMetrics(client))

	srv := mcpserver.New("scopegreen-lca", serverVersion, registry, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("base_url", client.BaseURL()).
		Str("tag", Tag).
		Str("commit", Commit).
		Str("build_time", BuildTime).
		Msg("Starting ScopeGreen LCA MCP server")
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("MCP server exited with error")
	}
	log.Info().Msg("ScopeGreen LCA MCP server stopped")
}
