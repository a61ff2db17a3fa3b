package main

import (
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	clockymcp "github.com/gorewood/clocky/internal/mcp"
	"github.com/gorewood/clocky/internal/remote"
	"github.com/gorewood/clocky/internal/timew"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Run as MCP server (stdio transport)",
		GroupID: "agents",
		Long: `Run clocky as a Model Context Protocol (MCP) server over stdio.

This lets an agent record time without the interactive prompts.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "clocky": {
        "command": "clocky",
        "args": ["serve"]
      }
    }
  }

Available tools: resolve_time, begin, track`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := clockymcp.NewServer(buildVersion(), serveDeps(a))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// serveDeps binds the MCP tools to a runner whose output is captured.
// stdin and stdout belong to the MCP transport, so ssh gets neither and
// no pseudo-terminal is requested.
func serveDeps(a *app) clockymcp.Deps {
	return clockymcp.Deps{
		NewClient: func(out io.Writer) *timew.Client {
			captured := a.runner.With(
				remote.WithTTY(false),
				remote.WithStdio(remote.Stdio{Stdout: out, Stderr: out}),
			)
			return timew.NewClient(captured, a.cfg.Command, a.cfg.Report)
		},
		Now: a.now,
	}
}
