package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/task"
)

func registerResources(srv *server.MCPServer, svc *app.Service) {
	registerStateResource(srv, svc)
	registerTabResource(srv, svc, task.Pending)
	registerTabResource(srv, svc, task.Completed)
}

func registerStateResource(srv *server.MCPServer, svc *app.Service) {
	resource := mcp.NewResource(
		"todo://state",
		"Session State",
		mcp.WithResourceDescription("Both task lists plus editor and tab state."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, svc.Snapshot())
	})
}

func registerTabResource(srv *server.MCPServer, svc *app.Service, tab task.Tab) {
	resource := mcp.NewResource(
		"todo://tasks/"+tab.String(),
		tab.Title(),
		mcp.WithResourceDescription("Tasks on the "+tab.String()+" list in display order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		list := listFor(svc, tab)
		payload := map[string]any{
			"tab":   tab.String(),
			"count": len(list),
			"tasks": list,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Tab   string `json:"tab"`
}

func listFor(svc *app.Service, tab task.Tab) []TaskDTO {
	st := svc.Snapshot()
	src := st.Pending
	if tab == task.Completed {
		src = st.Completed
	}
	out := make([]TaskDTO, 0, len(src))
	for i, t := range src {
		out = append(out, TaskDTO{Index: i, Name: t.Name, Tab: tab.String()})
	}
	return out
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
