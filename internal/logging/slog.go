package logging

import (
	"log/slog"
	"time"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation    = "operation"
	KeyServer       = "server"
	KeyPath         = "path"
	KeyResolver     = "resolver"
	KeyCacheKey     = "cache_key"
	KeyResolveID    = "resolve_id"
	KeyMentionCount = "mention_count"
	KeyDuration     = "duration"
	KeyStatus       = "status"
	KeyError        = "error"
)

// Status values for consistent logging.
// Note: These are intentionally duplicated from instrumentation package
// to avoid circular dependencies (instrumentation imports logging).
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithServer returns a logger with the server attribute set.
func WithServer(logger *slog.Logger, server string) *slog.Logger {
	return logger.With(slog.String(KeyServer, server))
}

// WithResolveID returns a logger with the resolve_id attribute set.
// The id correlates all log lines produced by one ResolveAll call.
func WithResolveID(logger *slog.Logger, id string) *slog.Logger {
	return logger.With(slog.String(KeyResolveID, id))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Server returns a slog attribute for the logical server name.
func Server(server string) slog.Attr {
	return slog.String(KeyServer, server)
}

// Path returns a slog attribute for the resource path.
func Path(path string) slog.Attr {
	return slog.String(KeyPath, path)
}

// CacheKey returns a slog attribute for a cache key.
func CacheKey(key string) slog.Attr {
	return slog.String(KeyCacheKey, key)
}

// MentionCount returns a slog attribute for the number of mentions.
func MentionCount(n int) slog.Attr {
	return slog.Int(KeyMentionCount, n)
}

// Duration returns a slog attribute for an operation duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}
