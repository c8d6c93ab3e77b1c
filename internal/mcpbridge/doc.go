// Package mcpbridge exposes the mention resolution engine to MCP
// (Model Context Protocol) hosts.
//
// It registers a resolve_mentions tool that takes raw text and returns
// the substituted text together with per-mention diagnostics, and one
// MCP resource per registered resolver binding so hosts can read
// resources through the engine directly. The bridge owns no transport;
// the caller decides how the MCP server is served.
package mcpbridge
