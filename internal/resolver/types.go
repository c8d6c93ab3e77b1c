package resolver

import (
	"context"
	"errors"
	"maps"

	"github.com/contextwire/mentions/internal/mention"
)

// Sentinel errors returned by Engine.Resolve. Per-mention failures in
// ResolveAll wrap one of these and land in the result's error list.
var (
	// ErrNoResolver indicates no resolver is bound for a mention's server.
	ErrNoResolver = errors.New("no resolver registered for server")

	// ErrNotFound indicates the bound resolver reported that the
	// resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidMention indicates a malformed mention record was
	// passed to Resolve. This is programmer misuse, not a resolution
	// failure.
	ErrInvalidMention = errors.New("invalid mention")
)

// Resource is the content a resolver produced for a mention.
// Ownership transfers to the caller on return; the cache keeps its own
// copy, so callers may mutate the result freely.
type Resource struct {
	// Content is the resolved textual content.
	Content string

	// MIMEType describes the content, empty when unknown.
	MIMEType string

	// URI is the canonical resource URI, e.g. "resource://fs/a.txt".
	URI string

	// Metadata carries optional resolver-specific annotations.
	Metadata map[string]string
}

// clone returns an independent copy of the resource.
func (r *Resource) clone() *Resource {
	if r == nil {
		return nil
	}
	c := *r
	if r.Metadata != nil {
		c.Metadata = maps.Clone(r.Metadata)
	}
	return &c
}

// Func resolves a resource from a server, path and optional query.
// Returning (nil, nil) signals "no such resource"; an error is
// reserved for internal faults such as I/O failures or malformed
// responses. Implementations own their own timeout policy and should
// honor ctx cancellation when they block on I/O.
type Func func(ctx context.Context, server, path string, query map[string]string) (*Resource, error)

// ResolutionError pairs a mention with the error that prevented its
// resolution.
type ResolutionError struct {
	Mention mention.Mention
	Err     error
}

// Error implements the error interface.
func (e ResolutionError) Error() string {
	return "resolve " + e.Mention.Raw + ": " + e.Err.Error()
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e ResolutionError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a whole-text resolution.
type Result struct {
	// Text is the input with every successfully resolved mention
	// replaced by its content. Failed mentions remain verbatim.
	Text string

	// Resources maps "server:path" to the resolved resource for every
	// successful resolution.
	Resources map[string]*Resource

	// Errors lists every mention that failed to resolve, in start
	// offset order. Empty on full success.
	Errors []ResolutionError
}
