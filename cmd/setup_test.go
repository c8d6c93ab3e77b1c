package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/contextwire/mentions/internal/resolver"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestBuildEngineMemorySeeds(t *testing.T) {
	eng, fsBindings, err := buildEngine(engineFlags{
		memSeeds: []string{"notes:/today=standup at 10", "notes:tomorrow=review"},
		ttl:      time.Minute,
	}, discardLogger())
	if err != nil {
		t.Fatalf("buildEngine() error = %v", err)
	}
	if len(fsBindings) != 0 {
		t.Errorf("expected no filesystem bindings, got %v", fsBindings)
	}

	result := eng.ResolveAll(context.Background(), "today: @resource://notes/today, next: @resource://notes/tomorrow")
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected resolution errors: %v", result.Errors)
	}
	expected := "today: standup at 10, next: review"
	if result.Text != expected {
		t.Errorf("resolved text = %q, want %q", result.Text, expected)
	}
}

func TestBuildEngineFilesystemBinding(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("file content"), 0o644); err != nil {
		t.Fatal(err)
	}

	eng, fsBindings, err := buildEngine(engineFlags{
		fsMappings: []string{"docs=" + dir},
		ttl:        time.Minute,
	}, discardLogger())
	if err != nil {
		t.Fatalf("buildEngine() error = %v", err)
	}
	if fsBindings["docs"] != dir {
		t.Errorf("fsBindings[docs] = %q, want %q", fsBindings["docs"], dir)
	}

	result := eng.ResolveAll(context.Background(), "@resource://docs/a.txt")
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected resolution errors: %v", result.Errors)
	}
	if result.Text != "file content" {
		t.Errorf("resolved text = %q, want %q", result.Text, "file content")
	}
}

func TestBuildEngineInvalidFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags engineFlags
	}{
		{
			name:  "fs mapping without separator",
			flags: engineFlags{fsMappings: []string{"docs"}, ttl: time.Minute},
		},
		{
			name:  "fs mapping with empty server",
			flags: engineFlags{fsMappings: []string{"=./docs"}, ttl: time.Minute},
		},
		{
			name:  "fs mapping with empty directory",
			flags: engineFlags{fsMappings: []string{"docs="}, ttl: time.Minute},
		},
		{
			name:  "seed without content separator",
			flags: engineFlags{memSeeds: []string{"notes:/today"}, ttl: time.Minute},
		},
		{
			name:  "seed without path separator",
			flags: engineFlags{memSeeds: []string{"notestoday=v"}, ttl: time.Minute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := buildEngine(tt.flags, discardLogger()); err == nil {
				t.Error("buildEngine() expected error, got nil")
			}
		})
	}
}

func TestBuildEngineNoCache(t *testing.T) {
	eng, _, err := buildEngine(engineFlags{
		memSeeds: []string{"notes:/a=v"},
		ttl:      time.Minute,
		noCache:  true,
	}, discardLogger())
	if err != nil {
		t.Fatalf("buildEngine() error = %v", err)
	}
	if eng.CacheEnabled() {
		t.Error("expected cache to be disabled")
	}
}

func TestBuildEngineCacheTTL(t *testing.T) {
	eng, _, err := buildEngine(engineFlags{ttl: 42 * time.Second}, discardLogger())
	if err != nil {
		t.Fatalf("buildEngine() error = %v", err)
	}
	if eng.CacheTTL() != 42*time.Second {
		t.Errorf("CacheTTL() = %v, want %v", eng.CacheTTL(), 42*time.Second)
	}
}

func TestBuildEngineHTTPBinding(t *testing.T) {
	eng, _, err := buildEngine(engineFlags{
		httpServers: []string{"example.com"},
		ttl:         time.Minute,
	}, discardLogger())
	if err != nil {
		t.Fatalf("buildEngine() error = %v", err)
	}
	if _, ok := eng.Registry().Lookup("example.com"); !ok {
		t.Error("expected HTTP resolver to be registered")
	}
}

func TestBuildEngineExtraOptions(t *testing.T) {
	eng, _, err := buildEngine(engineFlags{ttl: time.Minute}, discardLogger(),
		resolver.WithConcurrency(1))
	if err != nil {
		t.Fatalf("buildEngine() error = %v", err)
	}
	if eng == nil {
		t.Fatal("buildEngine() returned nil engine")
	}
}
