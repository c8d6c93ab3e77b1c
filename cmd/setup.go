package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/contextwire/mentions/internal/cache"
	"github.com/contextwire/mentions/internal/resolver"
	"github.com/contextwire/mentions/internal/resolvers"
)

// engineFlags holds the resolver-binding flags shared by the resolve
// and serve commands.
type engineFlags struct {
	fsMappings  []string
	memSeeds    []string
	httpServers []string
	ttl         time.Duration
	noCache     bool
}

// addEngineFlags registers the shared resolver flags on a command.
func addEngineFlags(cmd *cobra.Command, f *engineFlags) {
	cmd.Flags().StringArrayVar(&f.fsMappings, "fs", nil,
		"Bind a filesystem resolver, format: server=directory (repeatable)")
	cmd.Flags().StringArrayVar(&f.memSeeds, "set", nil,
		"Seed an in-memory resource, format: server:path=content (repeatable)")
	cmd.Flags().StringArrayVar(&f.httpServers, "http", nil,
		"Bind an HTTP resolver for a server name (repeatable)")
	cmd.Flags().DurationVar(&f.ttl, "cache-ttl", cache.DefaultTTL,
		"Time-to-live for cached resolutions")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false,
		"Disable the resolution cache")
}

// buildEngine constructs an engine with resolvers bound per the flags.
// It returns the engine and the filesystem bindings (server → base
// directory) so the serve command can attach change watchers.
func buildEngine(f engineFlags, logger *slog.Logger, extra ...resolver.Option) (*resolver.Engine, map[string]string, error) {
	opts := append([]resolver.Option{
		resolver.WithLogger(logger),
		resolver.WithCacheTTL(f.ttl),
	}, extra...)
	eng := resolver.New(opts...)
	if f.noCache {
		eng.SetCacheEnabled(false)
	}

	fsBindings := make(map[string]string)
	for _, mapping := range f.fsMappings {
		server, dir, ok := strings.Cut(mapping, "=")
		if !ok || server == "" || dir == "" {
			return nil, nil, fmt.Errorf("invalid --fs mapping %q, expected server=directory", mapping)
		}
		fsr := resolvers.NewFilesystem(afero.NewOsFs(), dir)
		eng.Register(server, fsr.Resolve)
		fsBindings[server] = dir
	}

	if len(f.memSeeds) > 0 {
		mem := resolvers.NewMemory()
		for _, seed := range f.memSeeds {
			ref, content, ok := strings.Cut(seed, "=")
			if !ok {
				return nil, nil, fmt.Errorf("invalid --set seed %q, expected server:path=content", seed)
			}
			server, path, ok := strings.Cut(ref, ":")
			if !ok || server == "" || path == "" {
				return nil, nil, fmt.Errorf("invalid --set seed %q, expected server:path=content", seed)
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}
			mem.Set(server, path, content)
			eng.Register(server, mem.Resolve)
		}
	}

	for _, server := range f.httpServers {
		httpResolver := resolvers.NewHTTP()
		eng.Register(server, httpResolver.Resolve)
	}

	return eng, fsBindings, nil
}

// newLogger creates the CLI's structured logger. Logs go to stderr so
// resolved text on stdout stays clean.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
