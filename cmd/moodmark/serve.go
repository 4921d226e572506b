package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	moodmarkmcp "github.com/gorewood/moodmark/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run moodmark as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "moodmark": {
        "command": "moodmark",
        "args": ["serve"]
      }
    }
  }

Logs go to stderr. Options from config.yaml and MOODMARK_* variables are the
defaults of every tool call.

Available tools: list_days, preview_day, list_moods, convert`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newRunEnv(cmd)
			if err != nil {
				return err
			}
			server := moodmarkmcp.NewServer(buildVersion(), env.opts, env.logger)
			env.logger.Debug().Msg("serving MCP over stdio")
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
