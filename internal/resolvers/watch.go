package resolvers

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/contextwire/mentions/internal/logging"
)

// Watcher reports file changes under a filesystem resolver's base
// directory so the host can invalidate cached resolutions whose
// backing files changed. Only the real OS filesystem can be watched.
type Watcher struct {
	server   string
	baseDir  string
	onChange func(server, path string)
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
}

// NewWatcher creates a watcher for baseDir. onChange receives the
// logical server name and the resource path (slash-separated, rooted
// at "/") of every file written, created, removed or renamed under the
// directory.
func NewWatcher(server, baseDir string, onChange func(server, path string), logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	if err := fsw.Add(baseDir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", baseDir, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		server:   server,
		baseDir:  baseDir,
		onChange: onChange,
		watcher:  fsw,
		logger:   logging.WithServer(logger, server),
	}, nil
}

// Run processes filesystem events until ctx is cancelled or the
// underlying watcher closes. Call it in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			rel, err := filepath.Rel(w.baseDir, event.Name)
			if err != nil || strings.HasPrefix(rel, "..") {
				continue
			}
			resourcePath := "/" + filepath.ToSlash(rel)
			w.logger.Debug("file changed", logging.Path(resourcePath))
			w.onChange(w.server, resourcePath)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", logging.Err(err))
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
