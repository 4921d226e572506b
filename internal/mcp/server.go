// Package mcp provides a Model Context Protocol server for moodmark.
// It exposes journal inspection and conversion as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gorewood/moodmark/internal/config"
)

// NewServer creates an MCP server with all moodmark tools registered.
// opts supply the formatting and mood taxonomy defaults of every tool call.
func NewServer(version string, opts config.Options, logger zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodmark",
		Version: version,
	}, nil)
	registerTools(server, &tools{opts: opts, logger: logger})
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that only read the journal.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for the convert tool. Overwriting a
// changed note replaces its content, so the tool is marked destructive.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all moodmark tools to the server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_days",
		Description: "List the days of a Daylio CSV export with their entry counts, moods and the vault path each note would be written to.",
		Annotations: readOnlyAnnotations(),
	}, t.handleListDays)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview_day",
		Description: "Render the Markdown note of one day of a Daylio CSV export without writing anything.",
		Annotations: readOnlyAnnotations(),
	}, t.handlePreviewDay)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_moods",
		Description: "Show the mood taxonomy used to classify moods: every known mood with its group, and which moods are custom.",
		Annotations: readOnlyAnnotations(),
	}, t.handleListMoods)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Daylio CSV export into one Markdown note per day under a vault directory. Changed notes are kept unless force is accept.",
		Annotations: writeAnnotations(),
	}, t.handleConvert)
}
