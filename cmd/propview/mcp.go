// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/anonkit/propview/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running propview as an MCP server, exposing the property inspector to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing propview's tools:
  - properties: Build the input or output property tree of a snapshot
  - criteria:   Describe the privacy criteria of a snapshot
  - validate:   Report every problem in a snapshot

Each tool reads the .propview.yaml next to the snapshot, if any.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcpserver.Run(cmd.Context(), Version, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
