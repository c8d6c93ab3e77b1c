// Package logging provides structured logging utilities for the
// mentions library.
//
// This package centralizes logging patterns to ensure consistent,
// structured logging throughout the codebase using the standard
// library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "resolve_all")
//	logger.Info("resolved mentions",
//	    logging.MentionCount(3),
//	    logging.Status(logging.StatusSuccess))
//
// Attribute helpers keep key names uniform so log lines from the
// engine, the cache and individual resolvers correlate cleanly.
package logging
