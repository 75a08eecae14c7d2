package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/task"
)

func registerTools(srv *server.MCPServer, svc *app.Service) {
	srv.AddTool(addTaskTool(), addTaskHandler(svc))
	srv.AddTool(editTaskTool(), editTaskHandler(svc))
	srv.AddTool(completeTaskTool(), completeTaskHandler(svc))
	srv.AddTool(deleteTaskTool(), deleteTaskHandler(svc))
	srv.AddTool(listTasksTool(), listTasksHandler(svc))
}

func addTaskTool() mcp.Tool {
	return mcp.NewTool(
		"add_task",
		mcp.WithDescription("Append a task to the end of the pending list."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Task text. Blank text is rejected."),
		),
	)
}

func addTaskHandler(svc *app.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		i, err := svc.Add(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(TaskDTO{Index: i, Name: name, Tab: task.Pending.String()})
	}
}

func editTaskTool() mcp.Tool {
	return mcp.NewTool(
		"edit_task",
		mcp.WithDescription("Rename a pending task in place."),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Zero-based position in the pending list."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Replacement text. Blank text leaves the task unchanged and is rejected."),
		),
	)
}

func editTaskHandler(svc *app.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Index *int   `json:"index"`
			Name  string `json:"name"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Index == nil {
			return mcp.NewToolResultError("index is required"), nil
		}
		if err := svc.Edit(ctx, *args.Index, args.Name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(TaskDTO{Index: *args.Index, Name: args.Name, Tab: task.Pending.String()})
	}
}

func completeTaskTool() mcp.Tool {
	return mcp.NewTool(
		"complete_task",
		mcp.WithDescription("Move a pending task to the end of the completed list."),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Zero-based position in the pending list."),
		),
	)
}

func completeTaskHandler(svc *app.Service) server.ToolHandlerFunc {
	return indexHandler(func(ctx context.Context, i int) (*mcp.CallToolResult, error) {
		t, at, err := svc.Complete(ctx, i)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(TaskDTO{Index: at, Name: t.Name, Tab: task.Completed.String()})
	})
}

func deleteTaskTool() mcp.Tool {
	return mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Remove a pending task without completing it."),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Zero-based position in the pending list."),
		),
	)
}

func deleteTaskHandler(svc *app.Service) server.ToolHandlerFunc {
	return indexHandler(func(ctx context.Context, i int) (*mcp.CallToolResult, error) {
		t, err := svc.Delete(ctx, i)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": t.Name, "pending": len(svc.Snapshot().Pending)})
	})
}

func listTasksTool() mcp.Tool {
	return mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List tasks on one tab, or both when tab is omitted."),
		mcp.WithString("tab",
			mcp.Description("Which list to return."),
			mcp.Enum("pending", "completed"),
		),
	)
}

func listTasksHandler(svc *app.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		value := request.GetString("tab", "")
		if value == "" {
			return toJSONResult(map[string][]TaskDTO{
				task.Pending.String():   listFor(svc, task.Pending),
				task.Completed.String(): listFor(svc, task.Completed),
			})
		}
		tab, err := task.ParseTab(value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string][]TaskDTO{tab.String(): listFor(svc, tab)})
	}
}

func indexHandler(fn func(context.Context, int) (*mcp.CallToolResult, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Index *int `json:"index"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Index == nil {
			return mcp.NewToolResultError("index is required"), nil
		}
		return fn(ctx, *args.Index)
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
