// Package mcp provides a Model Context Protocol server for clocky.
// It exposes time resolution and entry recording as MCP tools so an agent
// can log time without driving the interactive prompts.
package mcp

import (
	"io"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/clocky/internal/timew"
)

// Deps are the collaborators the tools need.
type Deps struct {
	// NewClient returns a timew client whose remote output is written to out.
	// Remote commands must not touch the server's stdin or stdout.
	NewClient func(out io.Writer) *timew.Client

	// Now is the reference time for day offsets.
	Now func() time.Time
}

// NewServer creates an MCP server with all clocky tools registered.
func NewServer(version string, deps Deps) *mcp.Server {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "clocky",
		Version: version,
	}, nil)
	registerTools(server, deps)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for pure tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that add entries remotely.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all clocky tools to the server.
func registerTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_time",
		Description: "Normalize a clock time (9:00, 14:30, 6pm, 6:30 pm, 18:00:00) to HH:MM:SS and build the YYYYMMDDTHHMMSS timestamp for a day offset.",
		Annotations: readOnlyAnnotations(),
	}, handleResolveTime(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "begin",
		Description: "Start tracking time now with tags, optionally annotating the new entry.",
		Annotations: writeAnnotations(),
	}, handleBegin(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "track",
		Description: "Record a finished time entry between two clock times on today or a past day, optionally annotated.",
		Annotations: writeAnnotations(),
	}, handleTrack(deps))
}
