// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// New creates a new MCP server with propview's tools registered.
func New(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "propview",
		Title:   "Propview: anonymization property inspector",
		Version: version,
	}, nil)

	registerTools(server)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, transport mcp.Transport) error {
	return New(version).Run(ctx, transport)
}
