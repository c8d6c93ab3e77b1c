// Package resolver turns resource mentions into content.
//
// The Engine drives resolution: it parses mentions out of text,
// consults a TTL cache, dispatches to resolver functions bound in an
// instance-scoped Registry, and substitutes resolved content back into
// the text. Mentions that cannot be resolved are left verbatim and
// reported in a diagnostic list; a failed resolution never aborts the
// rest of a text.
//
// Resolution lifecycle events (cache hit, missing resolver, resolver
// fault) are surfaced through Observer callbacks supplied at
// construction, and mirrored into logs, metrics and trace spans. There
// is no global event bus; every Engine is independent, so multiple
// hosts in one process cannot leak bindings or cache entries into each
// other.
package resolver
