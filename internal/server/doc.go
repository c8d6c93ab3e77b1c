// Package server provides the operational HTTP surface for the
// mentions MCP server: a Prometheus metrics endpoint on a dedicated
// port, isolated from the MCP transport.
package server
