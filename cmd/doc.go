// Package cmd implements the mentions command-line interface.
//
// The CLI is a thin host around the resolution engine: the resolve
// command substitutes mentions in a file or stdin, and the serve
// command exposes the engine to MCP hosts over stdio.
package cmd
