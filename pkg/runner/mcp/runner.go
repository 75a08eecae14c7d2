// Package mcp exposes a task session over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todo/pkg/app"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	// Serve overrides how the server is attached to a transport. It
	// defaults to stdio.
	Serve func(*server.MCPServer) error
}

// NewServer builds the MCP server with every tool and resource registered.
func NewServer(name, version string, svc *app.Service) *server.MCPServer {
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Manage an in-memory to-do list: add, edit, complete and delete pending tasks, and read both lists. Task indices are zero-based positions in the pending list and shift after removals."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	svc := r.Service
	if svc == nil {
		svc = app.New(nil)
	}
	name := r.Name
	if name == "" {
		name = "todo"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := NewServer(name, version, svc)
	svc.Log().InfoContext(ctx, "mcp server starting", "name", name, "version", version)

	if r.Serve != nil {
		return r.Serve(srv)
	}
	return server.ServeStdio(srv)
}
