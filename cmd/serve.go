package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/contextwire/mentions/internal/instrumentation"
	"github.com/contextwire/mentions/internal/mcpbridge"
	"github.com/contextwire/mentions/internal/resolver"
	"github.com/contextwire/mentions/internal/resolvers"
	"github.com/contextwire/mentions/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		flags          engineFlags
		debug          bool
		watch          bool
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP server over stdio",
		Long: `serve exposes the resolution engine to MCP hosts over stdio.

The server registers a resolve_mentions tool that substitutes mentions
in host-supplied text, plus one readable resource per configured
resolver binding. With --watch, filesystem bindings are monitored and
cached resolutions are invalidated when their backing files change.

Examples:
  mentions serve --fs docs=./docs
  mentions serve --fs docs=./docs --watch --metrics-addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debug)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			instrConfig := instrumentation.DefaultConfig()
			instrConfig.ServiceVersion = version
			if err := instrConfig.Validate(); err != nil {
				return fmt.Errorf("invalid instrumentation config: %w", err)
			}
			provider, err := instrumentation.NewProvider(ctx, instrConfig)
			if err != nil {
				return fmt.Errorf("failed to initialize instrumentation: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_ = provider.Shutdown(shutdownCtx)
			}()

			eng, fsBindings, err := buildEngine(flags, logger,
				resolver.WithMetrics(provider.Metrics()))
			if err != nil {
				return err
			}

			if watch {
				for srv, dir := range fsBindings {
					w, err := resolvers.NewWatcher(srv, dir, func(server, path string) {
						eng.Invalidate(server, path)
					}, logger)
					if err != nil {
						return fmt.Errorf("failed to watch %s: %w", dir, err)
					}
					defer w.Close()
					go w.Run(ctx)
				}
			}

			mcpSrv := mcpserver.NewMCPServer("mentions", version,
				mcpserver.WithToolCapabilities(true),
				mcpserver.WithResourceCapabilities(false, false),
			)
			if err := mcpbridge.RegisterTools(mcpSrv, eng); err != nil {
				return fmt.Errorf("failed to register tools: %w", err)
			}
			if err := mcpbridge.RegisterServerResources(mcpSrv, eng); err != nil {
				return fmt.Errorf("failed to register resources: %w", err)
			}

			if metricsEnabled && provider.Enabled() {
				metricsSrv, err := server.NewMetricsServer(server.MetricsServerConfig{
					Addr:                    metricsAddr,
					InstrumentationProvider: provider,
				})
				if err != nil {
					return fmt.Errorf("failed to create metrics server: %w", err)
				}
				go func() {
					if err := metricsSrv.Start(); err != nil {
						logger.Error("metrics server stopped", "error", err)
					}
				}()
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					_ = metricsSrv.Shutdown(shutdownCtx)
				}()
			}

			logger.Info("starting MCP server on stdio",
				"servers", eng.Registry().Servers(),
				"cache_ttl", eng.CacheTTL())
			if err := mcpserver.ServeStdio(mcpSrv); err != nil {
				return fmt.Errorf("MCP server error: %w", err)
			}
			return nil
		},
	}

	addEngineFlags(cmd, &flags)
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&watch, "watch", false, "Invalidate cached resolutions when files under --fs directories change")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics", true, "Serve Prometheus metrics on a dedicated port")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Address for the metrics server")

	return cmd
}
