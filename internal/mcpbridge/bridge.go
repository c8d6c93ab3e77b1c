package mcpbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/contextwire/mentions/internal/mention"
	"github.com/contextwire/mentions/internal/resolver"
)

// RegisterTools registers the resolve_mentions tool with the MCP server.
func RegisterTools(s *mcpserver.MCPServer, eng *resolver.Engine) error {
	resolveTool := mcp.NewTool("resolve_mentions",
		mcp.WithDescription("Resolve @resource:// mentions embedded in text and substitute their content. "+
			"Unresolved mentions are left verbatim and reported as diagnostics."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text containing @resource://server/path mentions"),
		),
	)

	s.AddTool(resolveTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})
		text, _ := args["text"].(string)
		if text == "" {
			return mcp.NewToolResultError("text argument is required"), nil
		}

		result := eng.ResolveAll(ctx, text)

		diagnostics := make([]string, 0, len(result.Errors))
		for _, resErr := range result.Errors {
			diagnostics = append(diagnostics, resErr.Error())
		}

		payload := map[string]interface{}{
			"text":     result.Text,
			"resolved": len(result.Resources),
			"errors":   diagnostics,
		}
		jsonData, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	})

	return nil
}

// RegisterServerResources registers one MCP resource template per
// resolver binding currently present in the engine's registry. The
// template's path explosion routes every resources/read under
// resource://<server>/ to the engine, cache included; exact-URI
// resources cannot serve arbitrary paths.
func RegisterServerResources(s *mcpserver.MCPServer, eng *resolver.Engine) error {
	for _, server := range eng.Registry().Servers() {
		tmpl := mcp.NewResourceTemplate(
			"resource://"+server+"{/path*}",
			server+" resources",
			mcp.WithTemplateDescription("Resources served by the "+server+" resolver"),
		)

		s.AddResourceTemplate(tmpl, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return handleRead(ctx, request, eng)
		})
	}
	return nil
}

// handleRead resolves an MCP resource read through the engine.
func handleRead(ctx context.Context, request mcp.ReadResourceRequest, eng *resolver.Engine) ([]mcp.ResourceContents, error) {
	server, path, err := splitResourceURI(request.Params.URI)
	if err != nil {
		return nil, err
	}

	res, err := eng.Resolve(ctx, mention.Mention{
		Scheme: mention.SchemeResource,
		Server: server,
		Path:   path,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", request.Params.URI, err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: res.MIMEType,
			Text:     res.Content,
		},
	}, nil
}

// splitResourceURI splits "resource://server/path" into its server and
// path components. A missing path defaults to "/".
func splitResourceURI(uri string) (server, path string, err error) {
	rest, ok := strings.CutPrefix(uri, "resource://")
	if !ok {
		return "", "", fmt.Errorf("unsupported resource URI: %s", uri)
	}
	server, path, found := strings.Cut(rest, "/")
	if server == "" {
		return "", "", fmt.Errorf("missing server in resource URI: %s", uri)
	}
	if !found || path == "" {
		return server, "/", nil
	}
	return server, "/" + path, nil
}
